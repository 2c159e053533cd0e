package similarity

import (
	"context"
	"regexp"

	"tap/models"
)

// Rule maps a CC course-code pattern to a university course code with a
// fixed verdict. Rules encode well-known equivalencies (standard
// composition, algebra, intro programming) so bulk generation does not need
// an LLM call per pair.
type Rule struct {
	CCPattern *regexp.Regexp
	USVCode   string
	Type      models.EquivalencyType
	Score     int
	Notes     string
}

// DefaultRules covers the common feeder-college course numbering schemes.
var DefaultRules = []Rule{
	// English Composition
	{regexp.MustCompile(`(?i)^(ENGL|EWRT)\s*1A$`), "ENG101", models.EquivalencyDirect, 95, "Standard college composition course"},
	{regexp.MustCompile(`(?i)^(ENGL|EWRT)\s*1B$`), "ENG101", models.EquivalencyPartial, 85, "Advanced composition, partial credit for ENG101"},

	// Public Speaking
	{regexp.MustCompile(`(?i)^COMM\s*1A?$`), "ENG251", models.EquivalencyDirect, 95, "Standard public speaking course"},

	// College Algebra
	{regexp.MustCompile(`(?i)^MATH\s*(106|71|29)$`), "MATH113", models.EquivalencyDirect, 95, "College algebra equivalent"},
	{regexp.MustCompile(`(?i)^MATH\s*(10|13)$`), "MATH113", models.EquivalencyPartial, 80, "Statistics course, partial algebra credit"},
	{regexp.MustCompile(`(?i)^MATH\s*1A$`), "MATH113", models.EquivalencyDirect, 100, "Calculus I exceeds algebra requirement"},

	// Social sciences and humanities
	{regexp.MustCompile(`(?i)^PSYC\s*1$`), "PSY101", models.EquivalencyDirect, 95, "General psychology"},
	{regexp.MustCompile(`(?i)^SOC\s*1$`), "SOC101", models.EquivalencyDirect, 95, "Introduction to sociology"},
	{regexp.MustCompile(`(?i)^HIST\s*(4A|4B|17A|17B)$`), "HIST101", models.EquivalencyDirect, 95, "US history course"},

	// Natural sciences
	{regexp.MustCompile(`(?i)^BIOL\s*(6A|10)$`), "BIO101", models.EquivalencyDirect, 95, "General biology"},
	{regexp.MustCompile(`(?i)^CHEM\s*1A$`), "CHEM101", models.EquivalencyDirect, 95, "General chemistry"},
	{regexp.MustCompile(`(?i)^PHYS\s*(2A|4A)$`), "PHYS101", models.EquivalencyDirect, 95, "General physics"},

	// Business
	{regexp.MustCompile(`(?i)^(BUS|BUSI)\s*(10|1)$`), "BUS101", models.EquivalencyDirect, 95, "Introduction to business"},
	{regexp.MustCompile(`(?i)^(BUS|BUSI)\s*(11|12)$`), "BUS121", models.EquivalencyDirect, 90, "Information systems/data analytics"},
	{regexp.MustCompile(`(?i)^(BUS|BUSI)\s*(18|20)$`), "BUS201", models.EquivalencyDirect, 95, "Business law"},
	{regexp.MustCompile(`(?i)^(BUS|BUSI)\s*(49|30)$`), "BUS301", models.EquivalencyDirect, 90, "Principles of management"},
	{regexp.MustCompile(`(?i)^(BUS|BUSI)\s*(59|90|40)$`), "BUS401", models.EquivalencyDirect, 95, "Principles of marketing"},
	{regexp.MustCompile(`(?i)^(BUS|BUSI)\s*(60|45)$`), "BUS250", models.EquivalencyDirect, 90, "Finance fundamentals"},
	{regexp.MustCompile(`(?i)^(BUS|BUSI)\s*(57|87|50)$`), "BUS350", models.EquivalencyDirect, 85, "Human resources management"},
	{regexp.MustCompile(`(?i)^ACCT\s*1A$`), "BUS210", models.EquivalencyDirect, 95, "Financial accounting"},
	{regexp.MustCompile(`(?i)^ACCT\s*1B$`), "BUS220", models.EquivalencyDirect, 95, "Managerial accounting"},
	{regexp.MustCompile(`(?i)^ECON\s*(1|1A)$`), "ECON201", models.EquivalencyDirect, 95, "Macroeconomics"},
	{regexp.MustCompile(`(?i)^ECON\s*(2|1B)$`), "ECON202", models.EquivalencyDirect, 95, "Microeconomics"},

	// Computer science
	{regexp.MustCompile(`(?i)^(CS|C\s*S|CIS|CSCI)\s*(1A|2A|3A|10|20|22A|25|26A)$`), "CS101", models.EquivalencyDirect, 90, "Introduction to programming"},
	{regexp.MustCompile(`(?i)^(CS|C\s*S|CIS|CSCI)\s*(1B|2B|3B|22B|35A)$`), "CS201", models.EquivalencyDirect, 90, "Intermediate programming/OOP"},
	{regexp.MustCompile(`(?i)^(CS|C\s*S|CIS|CSCI)\s*(1C|2C|3C|22C)$`), "CS301", models.EquivalencyDirect, 90, "Data structures and algorithms"},
	{regexp.MustCompile(`(?i)^(CS|C\s*S|CIS|CSCI)\s*(27|50)$`), "CS250", models.EquivalencyDirect, 85, "Database management"},
	{regexp.MustCompile(`(?i)^(CS|C\s*S|CIS|CSCI)\s*(30|60)$`), "CS350", models.EquivalencyDirect, 85, "Web development"},

	// Digital arts
	{regexp.MustCompile(`(?i)^(ART|ARTS)\s*(1A|2A)$`), "ART101", models.EquivalencyDirect, 90, "Drawing fundamentals"},
	{regexp.MustCompile(`(?i)^(ART|ARTS)\s*(10|13A)$`), "ART201", models.EquivalencyDirect, 90, "Digital imaging"},
	{regexp.MustCompile(`(?i)^(ART|ARTS)\s*(20|14)$`), "ART301", models.EquivalencyDirect, 90, "3D modeling"},
	{regexp.MustCompile(`(?i)^(ART|ARTS)\s*(30|15)$`), "ART401", models.EquivalencyDirect, 90, "Animation"},
	{regexp.MustCompile(`(?i)^(GID)\s*(10|11|20|30|40)$`), "ART201", models.EquivalencyElective, 75, "Digital design elective"},
	{regexp.MustCompile(`(?i)^(PHOT|PHTG)\s*1$`), "ART101", models.EquivalencyPartial, 70, "Photography as visual arts credit"},

	// Music and audio
	{regexp.MustCompile(`(?i)^(MUS|MUSI)\s*1A$`), "MUS101", models.EquivalencyDirect, 95, "Music theory I"},
	{regexp.MustCompile(`(?i)^(MUS|MUSI)\s*1B$`), "MUS201", models.EquivalencyDirect, 95, "Music theory II"},
	{regexp.MustCompile(`(?i)^(MUS|MUSI)\s*(4A|10A|10)$`), "MUS301", models.EquivalencyDirect, 90, "Music technology"},
	{regexp.MustCompile(`(?i)^(MUS|MUSI)\s*(4B|10B|12A|20)$`), "MUS401", models.EquivalencyDirect, 90, "Audio recording/production"},
}

// RuleOracle scores course pairs from the static rule table. It satisfies
// Oracle so the generation script can run with or without an API key.
type RuleOracle struct {
	Rules []Rule
}

// NewRuleOracle returns a RuleOracle over DefaultRules.
func NewRuleOracle() *RuleOracle {
	return &RuleOracle{Rules: DefaultRules}
}

// ScoreSimilarity matches the CC course code against the rule table. Pairs
// no rule covers come back as "none" with a zero score and no error.
func (o *RuleOracle) ScoreSimilarity(_ context.Context, ccCourse, usvCourse models.Course) (Analysis, error) {
	for _, rule := range o.Rules {
		if rule.USVCode == usvCourse.CourseCode && rule.CCPattern.MatchString(ccCourse.CourseCode) {
			return Analysis{
				EquivalencyType: rule.Type,
				SimilarityScore: rule.Score,
				Notes:           rule.Notes,
			}, nil
		}
	}
	return Analysis{EquivalencyType: models.EquivalencyNone}, nil
}
