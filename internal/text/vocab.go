package text

// Static vocabularies for ticket text analysis. All sets are built once at
// package init and never mutated. Lookups are case-sensitive against
// normalized (lowercased) tokens.

// StopWords is the combined generic-English and tracker-domain stop list.
// Tokens in this set never survive keyword extraction.
var StopWords = makeSet(
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
	"of", "with", "by", "is", "are", "was", "were", "be", "been", "being",
	"have", "has", "had", "having", "do", "does", "did", "doing",
	"will", "would", "could", "should", "may", "might", "must", "shall", "can",
	"this", "that", "these", "those",
	"from", "up", "about", "into", "through", "during", "before", "after",
	"above", "below", "out", "off", "over", "under", "again", "further",
	"then", "once", "here", "there", "when", "where", "why", "how", "all",
	"any", "both", "each", "few", "more", "most", "other", "some", "such",
	"no", "nor", "not", "only", "own", "same", "so", "than", "too", "very",
	"you", "your", "yours", "yourself", "yourselves", "i", "me", "my", "myself",
	"we", "our", "ours", "ourselves", "what", "which", "who", "whom", "am",

	// Tracker-domain stop words.
	"ticket", "issue", "bug", "feature", "story", "task", "epic", "incident",
	"request", "problem", "error", "failure", "broken", "fixed", "resolved",
	"closed", "open", "pending", "in progress", "done", "blocked", "ready",
	"test", "testing", "deploy", "deployment", "release", "version", "build",
	"code", "codebase", "repository", "branch", "merge", "commit", "push",
	"pull", "review", "approve", "reject", "comment", "update",
	"create", "delete", "modify", "change", "add", "remove", "implement",
	"develop", "design", "plan", "document", "documentation", "user", "customer",
	"client", "team", "developer", "tester", "analyst", "manager", "admin",
)

// TechnicalTerms are tokens treated as high-signal regardless of length.
// The set spans general engineering vocabulary plus the conversational-AI
// domain the ticket corpus covers.
var TechnicalTerms = makeSet(
	"api", "database", "server", "client", "frontend", "backend", "ui", "ux",
	"authentication", "authorization", "login", "logout", "session", "token",
	"password", "encryption", "security", "ssl", "https", "http", "rest",
	"json", "xml", "sql", "query", "table", "index", "cache",
	"memory", "cpu", "disk", "network", "connection", "timeout", "error",
	"exception", "crash", "hang", "freeze", "slow", "performance", "latency",
	"throughput", "bandwidth", "load", "stress", "test", "unit", "integration",
	"deployment", "production", "staging", "development", "environment",
	"configuration", "setting", "parameter", "variable", "function", "method",
	"class", "object", "interface", "module", "component", "service", "library",
	"framework", "plugin", "extension", "addon", "widget", "button", "form",
	"input", "output", "data", "file", "upload", "download", "import", "export",
	"sync", "async", "thread", "process", "job", "task", "queue", "message",
	"event", "trigger", "callback", "hook", "webhook", "notification", "alert",
	"log", "logging", "monitor", "dashboard", "report", "analytics", "metric",
	"statistic", "chart", "graph", "visualization", "display", "render",
	"browser", "mobile", "desktop", "app", "application", "website", "web",
	"cloud", "aws", "azure", "gcp", "docker", "container", "kubernetes",
	"microservice", "monolith", "architecture", "pattern", "design", "model",

	// Conversational-AI specific terms.
	"conversational", "chatbot", "bot", "nlp", "natural", "language", "processing",
	"intent", "entity", "utterance", "response", "dialog", "conversation", "chat",
	"voice", "speech", "recognition", "asr", "tts", "text", "synthesis",
	"validation", "testing", "scenario", "flow", "workflow", "pipeline",
	"training", "ai", "machine", "learning", "ml", "algorithm",
	"confidence", "accuracy", "precision", "recall", "f1", "score",
	"false", "positive", "negative", "true",
	"threshold", "sensitivity", "specificity", "roc", "auc", "curve",
	"dataset", "split", "cross", "fold",
	"overfitting", "underfitting", "bias", "variance", "regularization",
	"engineering", "preprocessing", "normalization", "standardization",
	"tokenization", "lemmatization", "stemming", "stop", "words", "n-gram",
	"bag", "tfidf", "word2vec", "glove", "bert", "transformer",
	"attention", "mechanism", "encoder", "decoder", "sequence",
	"recurrent", "neural", "rnn", "lstm", "gru", "cnn",
	"convolutional", "deep",
	"supervised", "unsupervised", "semi", "reinforcement",
	"clustering", "classification", "regression", "prediction", "forecasting",
	"anomaly", "detection", "outlier",
	"computer", "vision", "image", "segmentation", "face", "optical", "character",
	"ocr", "extraction", "information", "retrieval",
	"search", "engine", "indexing", "ranking", "relevance", "similarity",
	"recommendation", "system", "collaborative", "filtering", "content", "based",
	"hybrid", "personalization", "customization", "adaptation",
	"context", "aware", "situational", "awareness", "environmental",
	"profile", "preference", "behavior", "interaction", "engagement",
	"retention", "conversion", "churn", "lifetime", "value", "ltv", "roi",
	"kpi", "insight", "reporting",
	"real", "time", "streaming", "batch",
	"etl", "extract", "transform", "warehouse", "lake",
	"big", "distributed", "computing", "mapreduce", "hadoop", "spark",
	"kafka", "stream", "driven",
	"microservices", "gateway", "mesh", "balancer",
	"circuit", "breaker", "retry", "fallback", "graceful", "degradation",
	"fault", "tolerance", "high", "availability", "scalability",
	"optimization", "caching", "sharding", "partitioning", "replication",
	"backup", "recovery", "disaster", "business", "continuity",
	"privacy", "gdpr", "compliance", "audit", "monitoring", "alerting",
	"devops", "ci", "cd", "continuous",
	"containerization", "orchestration", "swarm",
	"infrastructure", "as", "terraform", "ansible", "chef", "puppet",
	"native", "serverless", "lambda", "edge",
	"fog", "systems", "databases", "nosql", "mongodb", "cassandra", "redis",
	"elasticsearch", "solr", "lucene", "inverted", "full",
	"neo4j", "graphql", "schema",
	"soap", "grpc", "protocol", "buffers",
	"serialization", "deserialization", "marshalling", "unmarshalling",
	"rabbitmq", "activemq", "pub", "sub",
	"sourcing", "cqrs", "command", "responsibility", "segregation",
	"domain", "ddd", "bounded", "aggregate",
	"repository", "factory", "strategy", "observer", "decorator",
	"adapter", "facade", "proxy", "singleton", "builder", "template",
	"state", "chain", "interpreter", "iterator", "mediator",
	"memento", "flyweight", "abstract", "bridge", "composite",
	"visitor", "prototype",
)

// noiseTokens are URL fragments and TLDs that carry no signal.
var noiseTokens = makeSet(
	"http", "https", "www", "com", "org", "net", "io", "co", "uk", "us",
)

// alwaysKeep are short tokens kept even when they fail the length rule.
var alwaysKeep = makeSet(
	"test", "testing", "validation", "fail", "failure", "error", "bug",
	"issue", "bot", "conversational", "conversation",
)

// SubjectHeads anchors subject-term extraction: a token in this set pulls in
// itself plus its adjacent bigrams.
var SubjectHeads = makeSet(
	"node", "flag", "field", "feature", "event", "function", "handler",
	"endpoint", "api", "parameter", "property", "setting", "toggle",
	"connector", "channel", "task", "job", "queue", "session", "token",
	"key", "header", "intent", "entity", "language", "locale",
	"analytics", "dashboard", "report", "metric", "filter", "log", "usage",
	"userid", "summary", "console", "import", "migration",
	"genai", "llm", "openai", "gpt", "dialoggpt", "searchai", "websdk",
)

// SubjectPhrases are known multi-word subjects matched as substrings of the
// normalized summary.
var SubjectPhrases = []string{
	"goal completion rate",
	"performance dashboard",
	"user id filter",
	"userid filter",
	"usage logs",
	"gen ai node",
	"dialog gpt",
	"openai connector",
	"admin console",
	"full bot import",
}

// genericPhrases are status/problem phrasing stripped during normalization,
// applied in order before tokenization.
var genericPhrases = []string{
	"not functioning",
	"not working",
	"as expected",
	"unexpected",
	"issue with",
	"error occurred",
	"failed",
	"failure",
	"failing",
	"throws error",
	"showing error",
}

func makeSet(words ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}
