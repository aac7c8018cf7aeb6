package feeds

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/kunya-oba/morning-dashboard/internal/config"
	"github.com/kunya-oba/morning-dashboard/internal/fetch"
	"github.com/kunya-oba/morning-dashboard/internal/models"
)

// anniversaryPattern matches phrases ending in の日 or 記念日 within one
// sentence fragment.
var anniversaryPattern = regexp.MustCompile(`[^、。]*(?:の日|記念日)[^、。]*`)

// AnniversaryClient asks the Japanese Wikipedia date page what today is.
type AnniversaryClient struct {
	HTTP fetch.Doer
	// Pick selects one of the candidate matches; defaults to uniform random.
	Pick func(n int) int
}

// Fetch returns today's anniversary. Request failure falls back to the
// curated calendar table; a date missing from that table is an error.
func (c AnniversaryClient) Fetch(ctx context.Context, now time.Time) (models.Anniversary, error) {
	month, day := int(now.Month()), now.Day()
	page := fmt.Sprintf("%d月%d日", month, day)
	target := "https://ja.wikipedia.org/api/rest_v1/page/summary/" + url.PathEscape(page)

	body, err := fetch.Get(ctx, c.HTTP, target, config.FetchTimeout)
	if err != nil {
		if fallback, ok := FallbackAnniversaries[fmt.Sprintf("%d-%d", month, day)]; ok {
			return fallback, nil
		}
		return models.Anniversary{}, err
	}

	var resp struct {
		Extract string `json:"extract"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		if fallback, ok := FallbackAnniversaries[fmt.Sprintf("%d-%d", month, day)]; ok {
			return fallback, nil
		}
		return models.Anniversary{}, err
	}
	return pickAnniversary(resp.Extract, month, day, c.pick), nil
}

func (c AnniversaryClient) pick(n int) int {
	if c.Pick != nil {
		return c.Pick(n)
	}
	return rand.Intn(n)
}

// pickAnniversary extracts candidate anniversary phrases from the page
// summary and picks one uniformly at random; with no match, the first
// sentence stands in.
func pickAnniversary(extract string, month, day int, pick func(int) int) models.Anniversary {
	matches := anniversaryPattern.FindAllString(extract, -1)
	if len(matches) > 0 {
		chosen := strings.TrimSpace(matches[pick(len(matches))])
		return models.Anniversary{
			Title:       chosen,
			Description: fmt.Sprintf("%d月%d日は%sです。", month, day, chosen),
		}
	}
	first := strings.SplitN(extract, "。", 2)[0]
	if first != "" {
		first += "。"
	} else {
		first = fmt.Sprintf("%d月%d日の記念日情報", month, day)
	}
	return models.Anniversary{
		Title:       fmt.Sprintf("%d月%d日", month, day),
		Description: first,
	}
}

// FallbackAnniversaries is the hand-curated calendar keyed by "month-day".
var FallbackAnniversaries = map[string]models.Anniversary{
	"1-1":   {Title: "元日", Description: "1月1日は元日です。年の初めを祝う国民の祝日です。"},
	"1-7":   {Title: "七草", Description: "1月7日は七草の日です。七草粥を食べる風習があります。"},
	"2-3":   {Title: "節分", Description: "2月3日は節分です。豆まきをして邪気を払います。"},
	"2-11":  {Title: "建国記念の日", Description: "2月11日は建国記念の日です。日本の建国を祝う祝日です。"},
	"2-14":  {Title: "バレンタインデー", Description: "2月14日はバレンタインデーです。チョコレートを贈る日として知られています。"},
	"3-3":   {Title: "ひな祭り", Description: "3月3日はひな祭りです。女の子の健やかな成長を願う日です。"},
	"3-14":  {Title: "ホワイトデー", Description: "3月14日はホワイトデーです。バレンタインのお返しをする日です。"},
	"3-20":  {Title: "春分の日", Description: "3月20日は春分の日です。昼と夜の長さがほぼ等しくなる日です。"},
	"4-1":   {Title: "エイプリルフール", Description: "4月1日はエイプリルフールです。罪のない嘘をついても良いとされる日です。"},
	"4-29":  {Title: "昭和の日", Description: "4月29日は昭和の日です。激動の日々を経て復興した昭和の時代を顧みる祝日です。"},
	"5-3":   {Title: "憲法記念日", Description: "5月3日は憲法記念日です。日本国憲法の施行を記念する祝日です。"},
	"5-4":   {Title: "みどりの日", Description: "5月4日はみどりの日です。自然に親しみ、その恩恵に感謝する祝日です。"},
	"5-5":   {Title: "こどもの日", Description: "5月5日はこどもの日です。こどもの人格を重んじ、幸福を図る祝日です。"},
	"5-10":  {Title: "コットンの日", Description: "5月10日はコットンの日です。5（こ）10（ten）でコットンの日です。"},
	"7-7":   {Title: "七夕", Description: "7月7日は七夕です。織姫と彦星の伝説で知られる日です。"},
	"8-11":  {Title: "山の日", Description: "8月11日は山の日です。山に親しむ機会を得て、山の恩恵に感謝する祝日です。"},
	"9-23":  {Title: "秋分の日", Description: "9月23日は秋分の日です。祖先を敬い、亡くなった人を偲ぶ祝日です。"},
	"10-10": {Title: "目の愛護デー", Description: "10月10日は目の愛護デーです。10を横にすると眉と目の形に見えることから。"},
	"10-31": {Title: "ハロウィン", Description: "10月31日はハロウィンです。仮装をして楽しむイベントとして定着しています。"},
	"11-3":  {Title: "文化の日", Description: "11月3日は文化の日です。自由と平和を愛し、文化をすすめる祝日です。"},
	"11-11": {Title: "ポッキー&プリッツの日", Description: "11月11日はポッキー&プリッツの日です。数字の「1」が並ぶことから。"},
	"11-15": {Title: "七五三", Description: "11月15日は七五三です。3歳、5歳、7歳の子どもの成長を祝う日です。"},
	"11-23": {Title: "勤労感謝の日", Description: "11月23日は勤労感謝の日です。勤労を尊び、生産を祝う祝日です。"},
	"12-24": {Title: "クリスマスイブ", Description: "12月24日はクリスマスイブです。クリスマスの前夜祭です。"},
	"12-25": {Title: "クリスマス", Description: "12月25日はクリスマスです。イエス・キリストの降誕を祝う日です。"},
	"12-31": {Title: "大晦日", Description: "12月31日は大晦日です。一年の最後の日で、除夜の鐘をつく習慣があります。"},
}
