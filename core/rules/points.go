// Package rules has the pure point and scaling rules of the assessment rulebook.
package rules

import "github.com/veljkom/venuerank/schema"

// Points maps a category code and research-area group to its point value.
// Codes absent from the table yield zero points: a publication outside the
// rulebook earns nothing, which is the defined default rather than an error.
// The function is pure, deterministic, and total over its domain.
func Points(group schema.ResearchArea, code schema.CategoryCode) float64 {
	switch code {
	// M10: scientific monographs of international significance.
	case "M11":
		return 15
	case "M12":
		return 10
	case "M13":
		return 7
	case "M14":
		return 5
	case "M15":
		return 3
	case "M16":
		return 2
	case "M17":
		return 1.5
	case "M18":
		return 1

	// M20: papers in journals of international significance. The leading
	// tiers vary by research-area group.
	case "M21a":
		return byGroup(group, 10, 12, 12)
	case "M21":
		return byGroup(group, 8, 10, 10)
	case "M22":
		return byGroup(group, 5, 7, 7)
	case "M23":
		return byGroup(group, 3, 5, 5)
	case "M24":
		return byGroup(group, 2, 3, 4)
	case "M25":
		return 1.5
	case "M26":
		return 1
	case "M27":
		return 0.5
	case "M28":
		return 0.3

	// M30: contributions at international conferences.
	case "M31":
		return 3.5
	case "M32":
		return 1.5
	case "M33":
		return 1
	case "M34":
		return 0.5
	case "M35":
		return 0.3
	case "M36":
		return 0.2

	// M40: monographs of national significance.
	case "M41":
		return byGroup(group, 7, 8, 10)
	case "M42":
		return byGroup(group, 5, 6, 7)
	case "M43":
		return 3
	case "M44":
		return 2
	case "M45":
		return 1.5
	case "M46":
		return 1
	case "M47":
		return 0.5
	case "M48":
		return 0.3
	case "M49":
		return 0.2

	// M50: papers in national journals.
	case "M51":
		return byGroup(group, 2, 3, 3)
	case "M52":
		return 1.5
	case "M53":
		return 1
	case "M54":
		return 0.5
	case "M55":
		return 0.3
	case "M56":
		return 0.2
	case "M57":
		return 0.1

	// M60: contributions at national conferences.
	case "M61":
		return 1.5
	case "M62":
		return 1
	case "M63":
		return 0.5
	case "M64":
		return 0.3
	case "M65":
		return 0.2
	case "M66":
		return 0.2
	case "M67":
		return 0.1
	case "M68":
		return 0.1
	case "M69":
		return 0.1

	// M70: defended theses.
	case "M71":
		return 6
	case "M72":
		return 3

	// M80: technical solutions, software and published datasets.
	case "M81":
		return 8
	case "M82":
		return 6
	case "M83":
		return 4
	case "M84":
		return 3
	case "M85":
		return 2
	case "M86":
		return 2
	case "M87":
		return 1

	// M90: patents and protected varieties.
	case "M91":
		return 12
	case "M92":
		return 10
	case "M93":
		return 8
	case "M94":
		return 6
	case "M95":
		return 4
	case "M96":
		return 3
	case "M97":
		return 2
	case "M98":
		return 1
	case "M99":
		return 1

	default:
		return 0
	}
}

// byGroup selects the group-dependent value. Natural and technical sciences
// share a value, as do all groups outside the named ones.
func byGroup(group schema.ResearchArea, natural, social, humanities float64) float64 {
	switch group {
	case schema.SocialArea:
		return social
	case schema.HumanitiesArea:
		return humanities
	default: // natural, technical, other
		return natural
	}
}
