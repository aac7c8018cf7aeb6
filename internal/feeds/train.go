package feeds

import (
	"context"
	"strings"

	"golang.org/x/net/html"

	"github.com/kunya-oba/morning-dashboard/internal/config"
	"github.com/kunya-oba/morning-dashboard/internal/fetch"
	"github.com/kunya-oba/morning-dashboard/internal/models"
)

const (
	statusNormal    = "平常運転"
	statusDisrupted = "遅延・運転見合わせ等あり"
	statusUnknown   = "情報取得中"
)

// noDelayPhrases explicitly say there is no disruption. They take
// precedence over delay phrases when both appear in the same text.
var noDelayPhrases = []string{
	"遅延はありません", "遅延はございません", "遅延なし",
	"運転見合わせはありません", "平常通り", "平常どおり",
	"通常通り", "通常どおり", "正常に運転", "順調に運転",
}

var delayPhrases = []string{
	"遅延が発生", "遅延しています", "遅れが発生",
	"運転を見合わせ", "ダイヤ乱れ", "事故の影響", "故障の影響",
}

// delayPhrasesWithException only count when their negation is absent.
var delayPhrasesWithException = map[string]string{
	"運転見合わせ": "運転見合わせはありません",
	"運休":     "運休はありません",
}

var normalHints = []string{"平常", "通常", "正常", "運転しています"}

// TrainClient scrapes a transit operator's status page through the relay
// chain and classifies the extracted text.
type TrainClient struct {
	HTTP     fetch.Doer
	PageURL  string
	Operator string
	Railway  string
}

// Fetch returns the line's operational status. Total fetch failure is
// reported as an error; the card keeps a placeholder status visible.
func (c TrainClient) Fetch(ctx context.Context) (models.TrainStatus, error) {
	body, err := fetch.WithFallback(ctx, c.HTTP, c.PageURL, fetch.RelayChain(), config.ScrapeTimeout)
	if err != nil {
		return models.TrainStatus{
			Operator: c.Operator,
			Railway:  c.Railway,
			Status:   statusUnknown,
			Detail:   "公式サイトで最新情報をご確認ください",
		}, err
	}
	status, detail, disrupted := parseStatusPage(string(body))
	return models.TrainStatus{
		Operator:  c.Operator,
		Railway:   c.Railway,
		Status:    status,
		Detail:    detail,
		Disrupted: disrupted,
	}, nil
}

// primary selector first, then the looser fallbacks, in priority order.
var statusSelectors = []func(n *html.Node) bool{
	func(n *html.Node) bool { return attrContains(n, "class", "InformationUnkou") || attrContains(n, "id", "InformationUnkou") },
	func(n *html.Node) bool { return attrContains(n, "class", "unko-info") },
	func(n *html.Node) bool { return attrContains(n, "class", "service-info") },
	func(n *html.Node) bool { return attrContains(n, "id", "service_status") },
	func(n *html.Node) bool { return attrContains(n, "class", "status-info") },
	func(n *html.Node) bool { return attrContains(n, "class", "unkou") },
	func(n *html.Node) bool { return attrContains(n, "class", "status") },
	func(n *html.Node) bool { return n.Data == "div" && attrContains(n, "id", "info") },
}

// parseStatusPage walks the selector list and classifies the first
// informative text it finds. No informative text at all reads as normal
// operation.
func parseStatusPage(page string) (status, detail string, disrupted bool) {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return statusNormal, "現在、運行に関する情報はありません", false
	}

	for i, match := range statusSelectors {
		text := collectText(doc, match)
		// The primary selector accepts any non-empty text; the loose
		// fallbacks need more than a stray character to be trusted.
		min := 10
		if i == 0 {
			min = 1
		}
		if len([]rune(text)) < min {
			continue
		}
		if st, det, bad, ok := classifyStatusText(text, i == 0); ok {
			return st, det, bad
		}
	}
	return statusNormal, "現在、運行に関する情報はありません", false
}

// ClassifyStatusText classifies operational-status text. Explicit no-delay
// phrases win over delay phrases; text that mentions neither but looks like
// an ordinary notice reads as normal.
func ClassifyStatusText(text string) (status string, disrupted bool) {
	st, _, bad, ok := classifyStatusText(text, true)
	if !ok {
		return statusNormal, false
	}
	return st, bad
}

func classifyStatusText(text string, lenient bool) (status, detail string, disrupted, ok bool) {
	hasNoDelay := containsAny(text, noDelayPhrases)

	hasDelay := containsAny(text, delayPhrases)
	for phrase, exception := range delayPhrasesWithException {
		if strings.Contains(text, phrase) && !strings.Contains(text, exception) {
			hasDelay = true
		}
	}

	switch {
	case hasNoDelay, !hasDelay && containsAny(text, normalHints):
		return statusNormal, truncateRunes(text, 100), false, true
	case hasDelay:
		return statusDisrupted, truncateRunes(text, 150), true, true
	case lenient && len([]rune(text)) > 10:
		// Uninformative but present text defaults to normal operation.
		return statusNormal, truncateRunes(text, 100), false, true
	}
	return "", "", false, false
}

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func attrContains(n *html.Node, key, substr string) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, a := range n.Attr {
		if a.Key == key && strings.Contains(a.Val, substr) {
			return true
		}
	}
	return false
}

// collectText joins the trimmed text of every node matching the selector.
func collectText(doc *html.Node, match func(*html.Node) bool) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if match(n) {
			if t := strings.TrimSpace(nodeText(n)); t != "" {
				parts = append(parts, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return strings.Join(parts, " ")
}

func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(nodeText(c))
	}
	return b.String()
}
