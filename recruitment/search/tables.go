package search

// Tables holds the lookup data the scorers and the fallback parser
// consult. It is data, not logic: editing a synonym or adding a city must
// never require touching scoring code. DefaultTables returns the built-in
// set; tests and deployments can swap in their own.
type Tables struct {
	// RoleSynonyms maps a role to titles treated as equivalent.
	RoleSynonyms map[string][]string

	// RoleExpectedSkills maps a role to skills typically found on matching
	// profiles, used as a weaker signal when titles disagree.
	RoleExpectedSkills map[string][]string

	// CityAliases maps a city to localities and alternate names scored as
	// near matches.
	CityAliases map[string][]string

	// SkillSynonyms maps a skill to interchangeable names.
	SkillSynonyms map[string][]string

	// EducationLevels is the qualification ladder, lowest first.
	EducationLevels []string

	// EducationAliases maps qualification spellings onto ladder levels.
	EducationAliases map[string]string

	// KnownTitles, KnownSkills, KnownCertifications and KnownCities feed
	// the deterministic query parser.
	KnownTitles         []string
	KnownSkills         []string
	KnownCertifications []string
	KnownCities         []string

	// Stopwords are excluded when splitting responsibility phrases into
	// keywords.
	Stopwords map[string]struct{}
}

// DefaultTables returns the built-in lookup data.
func DefaultTables() *Tables {
	return &Tables{
		RoleSynonyms:        defaultRoleSynonyms,
		RoleExpectedSkills:  defaultRoleExpectedSkills,
		CityAliases:         defaultCityAliases,
		SkillSynonyms:       defaultSkillSynonyms,
		EducationLevels:     defaultEducationLevels,
		EducationAliases:    defaultEducationAliases,
		KnownTitles:         defaultKnownTitles,
		KnownSkills:         defaultKnownSkills,
		KnownCertifications: defaultKnownCertifications,
		KnownCities:         defaultKnownCities,
		Stopwords:           defaultStopwords,
	}
}

var defaultRoleSynonyms = map[string][]string{
	"warehouse manager":   {"store manager", "inventory manager", "godown manager", "warehouse incharge"},
	"store manager":       {"warehouse manager", "retail store manager", "store incharge"},
	"fleet manager":       {"transport manager", "logistics manager", "fleet supervisor"},
	"operations manager":  {"ops manager", "operation manager", "operations head"},
	"logistics manager":   {"supply chain manager", "fleet manager", "transport manager"},
	"delivery executive":  {"delivery boy", "delivery partner", "courier executive"},
	"software engineer":   {"software developer", "developer", "programmer", "sde"},
	"frontend developer":  {"front end developer", "ui developer", "web developer"},
	"backend developer":   {"back end developer", "server side developer"},
	"data analyst":        {"business analyst", "mis analyst", "reporting analyst"},
	"accountant":          {"accounts executive", "accounts manager", "junior accountant"},
	"hr manager":          {"human resources manager", "hr generalist", "people operations manager"},
	"sales executive":     {"business development executive", "field sales executive", "sales officer"},
	"sales manager":       {"business development manager", "area sales manager"},
	"customer support":    {"customer service", "customer care executive", "support executive"},
	"production manager":  {"plant manager", "manufacturing manager", "factory manager"},
	"procurement manager": {"purchase manager", "sourcing manager", "buyer"},
	"quality engineer":    {"qa engineer", "quality analyst", "quality inspector"},
	"security supervisor": {"security officer", "security incharge"},
}

var defaultRoleExpectedSkills = map[string][]string{
	"warehouse manager":   {"inventory", "wms", "logistics", "supply chain", "stock", "dispatch"},
	"store manager":       {"inventory", "retail", "pos", "merchandising", "stock"},
	"fleet manager":       {"fleet", "transport", "logistics", "vehicle", "routing", "gps"},
	"operations manager":  {"operations", "process", "sop", "vendor management", "mis"},
	"logistics manager":   {"logistics", "supply chain", "transport", "warehousing", "dispatch"},
	"software engineer":   {"java", "python", "go", "sql", "git", "api"},
	"frontend developer":  {"javascript", "react", "html", "css", "typescript"},
	"backend developer":   {"java", "python", "go", "node", "sql", "api", "microservices"},
	"data analyst":        {"excel", "sql", "python", "tableau", "power bi", "mis"},
	"accountant":          {"tally", "gst", "accounting", "taxation", "excel", "reconciliation"},
	"hr manager":          {"recruitment", "payroll", "onboarding", "hrms", "compliance"},
	"sales executive":     {"sales", "crm", "lead generation", "negotiation", "b2b"},
	"production manager":  {"production", "lean", "kaizen", "manufacturing", "planning"},
	"procurement manager": {"procurement", "sourcing", "vendor", "negotiation", "purchase"},
	"quality engineer":    {"quality", "iso", "audit", "six sigma", "inspection"},
}

var defaultCityAliases = map[string][]string{
	"delhi":     {"new delhi", "ncr", "delhi ncr", "gurgaon", "gurugram", "noida", "faridabad", "ghaziabad"},
	"gurgaon":   {"gurugram", "delhi ncr", "ncr"},
	"noida":     {"greater noida", "delhi ncr", "ncr"},
	"mumbai":    {"navi mumbai", "thane", "bombay"},
	"bangalore": {"bengaluru"},
	"pune":      {"pimpri", "chinchwad", "pcmc"},
	"hyderabad": {"secunderabad"},
	"chennai":   {"madras"},
	"kolkata":   {"calcutta", "howrah"},
	"ahmedabad": {"gandhinagar"},
}

var defaultSkillSynonyms = map[string][]string{
	"sap":        {"erp"},
	"erp":        {"sap"},
	"excel":      {"ms excel", "microsoft excel", "advanced excel"},
	"javascript": {"js", "ecmascript"},
	"typescript": {"ts"},
	"postgresql": {"postgres"},
	"kubernetes": {"k8s"},
	"node":       {"nodejs", "node.js"},
	"golang":     {"go"},
	"power bi":   {"powerbi"},
	"tally":      {"tally erp"},
	"wms":        {"warehouse management system"},
	"crm":        {"salesforce"},
	"mis":        {"reporting"},
}

var defaultEducationLevels = []string{
	"high school",
	"diploma",
	"bachelor",
	"master",
	"phd",
}

var defaultEducationAliases = map[string]string{
	"10th":          "high school",
	"12th":          "high school",
	"ssc":           "high school",
	"hsc":           "high school",
	"high school":   "high school",
	"intermediate":  "high school",
	"diploma":       "diploma",
	"iti":           "diploma",
	"polytechnic":   "diploma",
	"bachelor":      "bachelor",
	"bachelors":     "bachelor",
	"graduate":      "bachelor",
	"graduation":    "bachelor",
	"b.tech":        "bachelor",
	"btech":         "bachelor",
	"b.e":           "bachelor",
	"bca":           "bachelor",
	"b.com":         "bachelor",
	"bcom":          "bachelor",
	"bba":           "bachelor",
	"bsc":           "bachelor",
	"b.sc":          "bachelor",
	"ba":            "bachelor",
	"master":        "master",
	"masters":       "master",
	"post graduate": "master",
	"postgraduate":  "master",
	"pg":            "master",
	"m.tech":        "master",
	"mtech":         "master",
	"mba":           "master",
	"mca":           "master",
	"m.com":         "master",
	"mcom":          "master",
	"msc":           "master",
	"m.sc":          "master",
	"ma":            "master",
	"phd":           "phd",
	"ph.d":          "phd",
	"doctorate":     "phd",
}

var defaultKnownTitles = []string{
	"warehouse manager", "store manager", "fleet manager", "operations manager",
	"logistics manager", "delivery executive", "supply chain manager",
	"software engineer", "software developer", "frontend developer",
	"backend developer", "full stack developer", "data analyst", "data scientist",
	"devops engineer", "qa engineer", "quality engineer", "accountant",
	"accounts executive", "hr manager", "hr executive", "recruiter",
	"sales executive", "sales manager", "business development executive",
	"business development manager", "customer support", "customer care executive",
	"production manager", "plant manager", "procurement manager",
	"purchase manager", "security supervisor", "electrician", "technician",
	"graphic designer", "content writer", "digital marketing executive",
	"project manager", "product manager",
}

var defaultKnownSkills = []string{
	"java", "python", "golang", "javascript", "typescript", "react", "angular",
	"node", "sql", "mysql", "postgresql", "mongodb", "aws", "azure", "docker",
	"kubernetes", "git", "excel", "tally", "gst", "sap", "erp", "crm",
	"power bi", "tableau", "wms", "inventory", "logistics", "supply chain",
	"procurement", "payroll", "recruitment", "lead generation", "negotiation",
	"six sigma", "autocad", "photoshop", "seo", "mis",
}

var defaultKnownCertifications = []string{
	"six sigma", "pmp", "prince2", "cpa", "ca", "cfa", "aws certified",
	"azure certified", "cissp", "ceh", "iso 9001", "itil", "scrum master",
	"google analytics", "nebosh",
}

var defaultKnownCities = []string{
	"delhi", "new delhi", "gurgaon", "gurugram", "noida", "faridabad",
	"ghaziabad", "mumbai", "navi mumbai", "thane", "pune", "bangalore",
	"bengaluru", "hyderabad", "secunderabad", "chennai", "kolkata",
	"ahmedabad", "surat", "jaipur", "lucknow", "kanpur", "nagpur", "indore",
	"bhopal", "patna", "chandigarh", "kochi", "coimbatore", "visakhapatnam",
}

var defaultStopwords = map[string]struct{}{
	"and":    {},
	"the":    {},
	"with":   {},
	"for":    {},
	"from":   {},
	"that":   {},
	"this":   {},
	"will":   {},
	"have":   {},
	"been":   {},
	"into":   {},
	"such":   {},
	"their":  {},
	"them":   {},
	"they":   {},
	"were":   {},
	"when":   {},
	"where":  {},
	"which":  {},
	"while":  {},
	"able":   {},
	"well":   {},
	"also":   {},
	"other":  {},
	"ensure": {},
	"daily":  {},
}
