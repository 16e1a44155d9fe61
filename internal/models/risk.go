package models

// RiskType is one of the nine closed categories the classifier scores.
// The order matches the classifier's output vector; NORMAL is always last.
type RiskType int

const (
	RiskTypeSexual RiskType = iota
	RiskTypeStalking
	RiskTypeCoercion
	RiskTypeThreat
	RiskTypePersonalInfo
	RiskTypeDiscrimination
	RiskTypeInsult
	RiskTypeRejection
	RiskTypeNormal
)

// NumRiskTypes is the length of the classifier's probability vector.
const NumRiskTypes = 9

var riskTypeNames = [NumRiskTypes]string{
	"SEXUAL",
	"STALKING",
	"COERCION",
	"THREAT",
	"PERSONAL_INFO",
	"DISCRIMINATION",
	"INSULT",
	"REJECTION",
	"NORMAL",
}

var riskTypeLabels = [NumRiskTypes]string{
	"성적",
	"스토킹",
	"강요",
	"협박",
	"개인정보",
	"차별",
	"모욕",
	"거절",
	"일반",
}

// String returns the enum member name used on the wire (e.g. "PERSONAL_INFO").
func (t RiskType) String() string {
	if t < 0 || int(t) >= NumRiskTypes {
		return riskTypeNames[RiskTypeNormal]
	}
	return riskTypeNames[t]
}

// Label returns the Korean category label the classifier was trained on.
func (t RiskType) Label() string {
	if t < 0 || int(t) >= NumRiskTypes {
		return riskTypeLabels[RiskTypeNormal]
	}
	return riskTypeLabels[t]
}

// RiskTypeByIndex maps a classifier output index to its RiskType.
// Out-of-range indices fall back to NORMAL.
func RiskTypeByIndex(index int) RiskType {
	if index < 0 || index >= NumRiskTypes {
		return RiskTypeNormal
	}
	return RiskType(index)
}

// RiskTypeByLabel maps a Korean category label to its RiskType.
// Unknown labels fall back to NORMAL.
func RiskTypeByLabel(label string) RiskType {
	for i, l := range riskTypeLabels {
		if l == label {
			return RiskType(i)
		}
	}
	return RiskTypeNormal
}

// RiskLevel is the four-tier severity ordinal derived from classifier confidence.
type RiskLevel int

const (
	RiskLevelHigh RiskLevel = iota
	RiskLevelMedium
	RiskLevelLow
	RiskLevelNormal
)

var riskLevelNames = [...]string{"HIGH", "MEDIUM", "LOW", "NORMAL"}

func (l RiskLevel) String() string {
	if l < 0 || int(l) >= len(riskLevelNames) {
		return riskLevelNames[RiskLevelNormal]
	}
	return riskLevelNames[l]
}

// RiskAssessment is the per-message decision derived from a probability vector.
type RiskAssessment struct {
	Level        RiskLevel
	Confidence   float64
	DominantType RiskType
	RiskTypes    []RiskType
}

// FallbackAssessment is the canonical assessment substituted when the
// classifier call for a message fails or times out.
func FallbackAssessment() RiskAssessment {
	return RiskAssessment{
		Level:        RiskLevelNormal,
		Confidence:   0,
		DominantType: RiskTypeNormal,
		RiskTypes:    []RiskType{RiskTypeNormal},
	}
}
