package keyword_extractor

// specialTokens are the tokenizer's control tokens, never keyword candidates.
var specialTokens = map[string]bool{
	"[CLS]": true,
	"[SEP]": true,
	"[PAD]": true,
	"[UNK]": true,
}

// stopWords is the closed list of Korean function words, pronouns,
// connectives and discourse markers excluded from keyword ranking.
var stopWords = map[string]bool{
	// demonstratives
	"이런": true, "저런": true, "그런": true,
	// particles
	"한테": true, "부터": true, "까지": true,
	// base verbs / copulas
	"하다": true, "되다": true, "있다": true, "없다": true, "이다": true, "아니다": true,
	// pronouns
	"우리": true, "저희": true, "그들": true, "그녀": true,
	// interrogatives and time/place adverbs
	"이제": true, "지금": true, "그때": true, "언제": true, "어디": true,
	"왜": true, "어떻게": true, "얼마나": true,
	// degree intensifiers
	"정말": true, "진짜": true, "아주": true, "매우": true, "너무": true,
	"조금": true, "약간": true, "거의": true, "대략": true,
	// repetition adverbs
	"또": true, "다시": true, "또다시": true, "계속": true, "자꾸": true, "계속해서": true,
	// conjunctions
	"그리고": true, "그래서": true, "그러면": true, "그런데": true,
	"하지만": true, "그렇지만": true, "그러나": true,
	// conditionals
	"만약": true, "만일": true, "혹시": true, "설령": true, "비록": true, "아무리": true,
	// causal connectives
	"왜냐하면": true, "그러므로": true, "따라서": true, "그러니까": true,
	// additive connectives
	"또한": true, "게다가": true, "더욱이": true, "특히": true, "특별히": true,
	// conclusive connectives
	"결국": true, "마침내": true, "드디어": true, "마지막으로": true,
	// exemplification
	"예를": true, "들면": true, "말하자면": true, "즉": true, "말해서": true,
	// certainty markers
	"물론": true, "당연히": true, "확실히": true, "분명히": true,
	// conjecture markers
	"아마": true, "아마도": true, "어쩌면": true,
	// factuality markers
	"실제로": true, "사실": true, "정말로": true, "진짜로": true,
	// result markers
	"결과적으로": true, "최종적으로": true, "궁극적으로": true,
	// sequence markers
	"일단": true, "우선": true, "먼저": true, "처음에": true,
	"끝으로": true, "마무리로": true,
	// misc discourse markers
	"한번": true, "더": true, "그래도": true, "그럼에도": true,
}
