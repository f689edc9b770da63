package political

// Static weight tables. All tables are initialized here and never mutated,
// so concurrent reads need no synchronization.

// domainWeight pairs a domain substring with its trust weight.
type domainWeight struct {
	domain string
	weight float64
}

// siteWeights assigns trust scores to known domains. Lookup is by
// substring containment with first match winning, so the slice is ordered
// most-specific-first: kokkai.ndl.go.jp must precede any shorter go.jp
// entry that could also match.
var siteWeights = []domainWeight{
	// Government - highest trust.
	{"kokkai.ndl.go.jp", 0.95},
	{"kantei.go.jp", 1.0},
	{"gov.go.jp", 1.0},
	{"soumu.go.jp", 0.95},
	{"mof.go.jp", 0.95},
	{"mofa.go.jp", 0.95},
	{"senkyo.go.jp", 0.9},

	// Major media.
	{"nhk.or.jp", 0.9},
	{"kyodo.co.jp", 0.9},
	{"jiji.com", 0.9},
	{"asahi.com", 0.85},
	{"yomiuri.co.jp", 0.85},
	{"nikkei.com", 0.85},
	{"mainichi.jp", 0.8},
	{"sankei.com", 0.8},

	// Party sites.
	{"jimin.jp", 0.9},
	{"cdp-japan.jp", 0.9},
	{"o-ishin.jp", 0.85},
	{"komei.or.jp", 0.85},
	{"jcp.or.jp", 0.85},

	// Politics-focused media.
	{"seijiyama.jp", 0.8},
	{"go2senkyo.com", 0.8},
	{"blogos.com", 0.7},

	// General portals.
	{"yahoo.co.jp", 0.6},
	{"google.com", 0.5},

	// Social and personal blogs - low trust.
	{"twitter.com", 0.4},
	{"facebook.com", 0.4},
	{"note.com", 0.5},
	{"ameblo.jp", 0.3},
}

// unknownSiteWeight is the default for domains not in the table.
const unknownSiteWeight = 0.5

// keywordWeights scores political vocabulary. A keyword found in a title
// contributes weight*0.4, in a snippet weight*0.2.
var keywordWeights = map[string]float64{
	// Core political terms.
	"内閣総理大臣": 1.0,
	"総理大臣":   1.0,
	"首相":     1.0,
	"内閣支持率":  1.0,
	"世論調査":   0.9,
	"衆議院選挙":  1.0,
	"参議院選挙":  1.0,
	"総選挙":    1.0,
	"国会":     0.9,
	"政府":     0.8,
	"閣議決定":   0.9,

	// Parties.
	"自由民主党":  0.9,
	"立憲民主党":  0.9,
	"日本維新の会": 0.8,
	"公明党":    0.8,
	"日本共産党":  0.8,

	// Politicians.
	"岸田文雄": 1.0,
	"泉健太":  0.8,
	"志位和夫": 0.8,
	"馬場伸幸": 0.7,

	// Policy areas.
	"経済政策": 0.8,
	"外交政策": 0.8,
	"安全保障": 0.8,
	"憲法改正": 0.9,
	"消費税":  0.7,
	"年金":   0.7,
	"医療":   0.7,

	// Political process.
	"法案": 0.8,
	"予算": 0.8,
	"政策": 0.7,
	"選挙": 0.9,
	"投票": 0.7,
}

// exclusionKeywords mark clearly non-political content. Each occurrence in
// title+snippet subtracts 0.5 from the relevance score.
var exclusionKeywords = []string{
	"スポーツ", "芸能", "エンタメ", "ゲーム", "アニメ",
	"料理", "レシピ", "ファッション", "美容", "旅行",
	"映画", "音楽", "小説", "漫画", "天気", "占い",
}

// intentTemplates maps an intent to its query-variant templates. The
// placeholder {q} is replaced with the original query.
var intentTemplates = map[Intent][]string{
	IntentSupportRating: {
		"{q} 支持率",
		"{q} 世論調査",
		"内閣支持率 {q}",
	},
	IntentElectionPrediction: {
		"{q} 選挙",
		"{q} 選挙予測",
		"衆議院選挙 {q}",
		"参議院選挙 {q}",
	},
	IntentPolicyAnalysis: {
		"{q} 政策",
		"{q} 法案",
		"政府 {q} 政策",
		"{q} 施策",
	},
	IntentPoliticalNews: {
		"{q} 政治",
		"{q} 国会",
		"政府 {q}",
		"{q} ニュース",
	},
	IntentPoliticianInfo: {
		"{q} 経歴",
		"{q} 発言",
		"{q} 政治家",
		"{q} 略歴",
	},
	IntentPartyInfo: {
		"{q} 政党",
		"{q} 公約",
		"{q} マニフェスト",
		"{q} 党",
	},
	IntentPoliticalScandal: {
		"{q} 疑惑",
		"{q} 説明責任",
		"{q} 問題",
		"{q} 追及",
	},
	IntentCoalitionAnalysis: {
		"{q} 連立",
		"{q} 与党",
		"自民公明 {q}",
		"{q} 協力",
	},
}

// genericTemplate is the single fallback variant for unknown intents.
const genericTemplate = "{q} 政治"

// siteTypeMultipliers holds per-intent multipliers for the three site-type
// buckets. Missing intents rank with neutral multipliers.
type siteTypeMultipliers struct {
	government float64
	media      float64
	party      float64
}

var intentMultipliers = map[Intent]siteTypeMultipliers{
	IntentSupportRating:      {government: 1.2, media: 1.0, party: 0.8},
	IntentElectionPrediction: {government: 1.0, media: 1.1, party: 0.9},
	IntentPolicyAnalysis:     {government: 1.3, media: 0.9, party: 1.0},
	IntentPoliticalNews:      {government: 1.0, media: 1.2, party: 0.8},
	IntentPoliticianInfo:     {government: 1.1, media: 1.0, party: 1.0},
	IntentPartyInfo:          {government: 0.9, media: 1.0, party: 1.3},
	IntentPoliticalScandal:   {government: 0.8, media: 1.2, party: 0.7},
	IntentCoalitionAnalysis:  {government: 1.1, media: 1.0, party: 1.1},
}

var neutralMultipliers = siteTypeMultipliers{government: 1.0, media: 1.0, party: 1.0}

// Site-type buckets for the ranker, checked in order: government, party,
// media. First match wins.
var (
	governmentDomains = []string{"go.jp", "kantei", "gov"}
	partyDomains      = []string{"jimin.jp", "cdp-japan.jp", "o-ishin.jp"}
	mediaDomains      = []string{"nhk.or.jp", "asahi.com", "yomiuri.co.jp"}
)

// timeKeywords marks hits as recent for each non-all time scope.
var timeKeywords = map[TimeScope][]string{
	TimeScopeRecent: {"今日", "昨日", "最新", "速報"},
	TimeScopeWeek:   {"今週", "先週", "週間"},
	TimeScopeMonth:  {"今月", "先月", "月間"},
}

// Restricted-search domain lists. One site:-scoped backend query is issued
// per domain.
var (
	governmentSearchDomains = []string{
		"kantei.go.jp",
		"gov.go.jp",
		"soumu.go.jp",
		"mof.go.jp",
		"mofa.go.jp",
	}
	mediaSearchDomains = []string{
		"nhk.or.jp",
		"asahi.com",
		"yomiuri.co.jp",
		"mainichi.jp",
		"kyodo.co.jp",
	}
)

// mediaBias maps outlets to a lean in [-1,1]; positive is right-leaning.
// Ordered slice for deterministic first-match-wins lookup.
var mediaBias = []domainWeight{
	{"sankei.com", 0.4},
	{"yomiuri.co.jp", 0.2},
	{"nikkei.com", 0.1},
	{"nhk.or.jp", 0.0},
	{"kyodo.co.jp", 0.0},
	{"jiji.com", 0.0},
	{"mainichi.jp", -0.2},
	{"asahi.com", -0.3},
}

// Suggestion tables for Suggest.
var (
	suggestionSuffixes = []string{"政策", "支持率", "選挙", "国会", "法案"}

	politicianNames    = []string{"岸田", "泉", "志位", "馬場", "玉木", "山本"}
	politicianSuffixes = []string{"発言", "経歴", "政治活動"}

	partyNames    = []string{"自民", "立憲", "維新", "公明", "共産"}
	partySuffixes = []string{"公約", "マニフェスト", "党首"}
)
