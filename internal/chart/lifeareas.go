package chart

// Life area keys.
const (
	AreaCareer        = "career"
	AreaRelationships = "relationships"
	AreaHealth        = "health"
	AreaFinance       = "finance"
)

// LifeAreaOrder is the display order of the life areas.
var LifeAreaOrder = []string{AreaCareer, AreaRelationships, AreaHealth, AreaFinance}

// LifeArea is a scored reading for one area of life.
type LifeArea struct {
	Score      int    `json:"score"`
	Prediction string `json:"prediction"`
}

var lifeAreaRules = map[string]struct {
	house    int
	occupied string
	empty    string
}{
	AreaCareer: {
		house:    10,
		occupied: "Favorable period for career advancement and recognition.",
		empty:    "Focus on building professional relationships and reputation.",
	},
	AreaRelationships: {
		house:    7,
		occupied: "Important developments in partnerships and relationships.",
		empty:    "Period of self-discovery in relationships.",
	},
	AreaHealth: {
		house:    6,
		occupied: "Focus on health improvements and wellness practices.",
		empty:    "Maintain regular health routines and stress management.",
	},
	AreaFinance: {
		house:    2,
		occupied: "Opportunities for financial growth and stability.",
		empty:    "Focus on building stable financial foundations.",
	},
}

const lifeAreaBase = 60

// LifeAreas scores career, relationships, health and finance from the
// planets in absolute houses 10, 7, 6 and 2. Each score starts at 60, moves
// 10 per exalted or debilitated planet in the house and is clamped to
// [0, 100]. The prediction depends only on whether the house is occupied.
func LifeAreas(positions []PlanetPosition) map[string]LifeArea {
	out := make(map[string]LifeArea, len(lifeAreaRules))
	for area, rule := range lifeAreaRules {
		score := lifeAreaBase
		occupied := false
		for _, p := range positions {
			if p.AbsoluteHouse != rule.house {
				continue
			}
			occupied = true
			switch p.Status {
			case Exalted:
				score += 10
			case Debilitated:
				score -= 10
			}
		}
		score = min(100, max(0, score))

		prediction := rule.empty
		if occupied {
			prediction = rule.occupied
		}
		out[area] = LifeArea{Score: score, Prediction: prediction}
	}
	return out
}
