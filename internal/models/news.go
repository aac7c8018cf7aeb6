package models

import "time"

// NewsCategory classifies a news item. "all" is implicit on every item.
type NewsCategory string

const (
	CategoryAll           NewsCategory = "all"
	CategoryDomestic      NewsCategory = "domestic"
	CategoryWorld         NewsCategory = "world"
	CategoryBusiness      NewsCategory = "business"
	CategoryTechnology    NewsCategory = "technology"
	CategoryEntertainment NewsCategory = "entertainment"
	CategorySports        NewsCategory = "sports"
)

// NewsItem is one syndicated article.
type NewsItem struct {
	Title      string
	Link       string
	PubDate    time.Time
	Source     string
	Categories []NewsCategory
	Favorite   bool
}

// CategoryLabels maps categories to their display names.
var CategoryLabels = map[NewsCategory]string{
	CategoryAll:           "総合",
	CategoryDomestic:      "国内",
	CategoryWorld:         "国際",
	CategoryBusiness:      "ビジネス",
	CategoryTechnology:    "テクノロジー",
	CategoryEntertainment: "エンタメ",
	CategorySports:        "スポーツ",
}

// CategoryKeywords drives keyword-containment category assignment.
var CategoryKeywords = map[NewsCategory][]string{
	CategoryDomestic:      {"日本", "東京", "大阪", "政府", "国会", "首相", "知事", "県", "市", "都", "府", "道"},
	CategoryWorld:         {"米国", "アメリカ", "中国", "韓国", "北朝鮮", "ロシア", "ヨーロッパ", "EU", "国連", "海外", "外交", "国際"},
	CategoryBusiness:      {"経済", "企業", "株価", "市場", "円", "ドル", "売上", "決算", "投資", "ビジネス", "業績", "取引"},
	CategoryTechnology:    {"AI", "人工知能", "IT", "アプリ", "ソフトウェア", "ハードウェア", "テクノロジー", "デジタル", "スマホ", "パソコン", "Google", "Apple", "Microsoft", "Amazon", "Meta"},
	CategoryEntertainment: {"芸能", "映画", "ドラマ", "音楽", "アニメ", "漫画", "タレント", "俳優", "女優", "アイドル", "エンタメ"},
	CategorySports:        {"野球", "サッカー", "テニス", "バスケ", "ゴルフ", "オリンピック", "大会", "選手", "スポーツ", "W杯", "日本代表"},
}

// OrderedCategories is the filter bar display order.
var OrderedCategories = []NewsCategory{
	CategoryAll, CategoryDomestic, CategoryWorld, CategoryBusiness,
	CategoryTechnology, CategoryEntertainment, CategorySports,
}
