package detect

import "regexp"

// Regex patterns for phrasing that language models lean on. Each pattern
// counts at most once toward the pattern score, however often it matches.
var aiPhrasePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(as an AI|I am an AI|I'm an AI|language model|AI assistant)\b`),
	regexp.MustCompile(`(?i)\b(I don't have|I cannot|I can't) (personal|opinions|feelings|emotions|access)\b`),
	regexp.MustCompile(`(?i)\b(it's important to note|it's worth noting|it should be noted)\b`),
	regexp.MustCompile(`(?i)\b(in conclusion|to summarize|in summary|to sum up)\b`),
	regexp.MustCompile(`(?i)\b(delve into|dive into|exploring|understanding|navigating)\b`),
	regexp.MustCompile(`(?i)\b(embark on|journey into|landscape of|realm of|world of)\b`),
	regexp.MustCompile(`(?i)\b(comprehensive guide|step-by-step|detailed overview)\b`),
	regexp.MustCompile(`(?i)\b(ensure that|make sure|it is crucial|vital to)\b`),
	regexp.MustCompile(`(?i)\b(ranging from .* to|from .* to .*)\b`),
	regexp.MustCompile(`(?i)\b(whether you're|whether it's|regardless of)\b`),
	regexp.MustCompile(`(?i)\b(first and foremost|last but not least)\b`),
	regexp.MustCompile(`(?i)\b(pros and cons|advantages and disadvantages)\b`),
	regexp.MustCompile(`(?i)\b(cutting-edge|state-of-the-art|revolutionary)\b`),
	regexp.MustCompile(`(?i)\b(game-changer|paradigm shift|transforms the way)\b`),
}

// Transition words that generated prose overuses.
var aiTransitions = wordSet(
	"however", "furthermore", "moreover", "additionally", "consequently",
	"therefore", "thus", "hence", "nevertheless", "nonetheless",
	"meanwhile", "subsequently", "accordingly", "likewise", "similarly",
)

// Buzzwords that generated prose overuses.
var aiBuzzwords = wordSet(
	"leverage", "optimize", "utilize", "facilitate", "implement",
	"demonstrate", "indicate", "comprehensive", "significant",
	"substantial", "optimal", "crucial", "vital", "essential",
	"robust", "seamless", "innovative", "revolutionize", "enhance",
	"streamline", "dynamic", "versatile", "efficient", "effective",
)

// Overly formal academic words. The set intentionally overlaps with the
// buzzword and transition lexicons; the analyzers form a weighted ensemble,
// not a partition, so shared tokens count toward every metric they belong to.
var formalWords = wordSet(
	"utilize", "facilitate", "implement", "demonstrate", "indicate",
	"comprehensive", "significant", "substantial", "optimal", "crucial",
	"moreover", "furthermore", "subsequently", "consequently", "nevertheless",
)

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		set[word] = struct{}{}
	}

	return set
}
