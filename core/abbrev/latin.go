package abbrev

// latinAbbreviations is the builtin abbreviation set for classical Latin
// prose. The single-letter praenomina C, D, L, M and V collide with Roman
// numeral letters; the rule engine additionally suppresses numeral-adjacent
// periods, so the collision is harmless in either direction.
var latinAbbreviations = List{
	// Roman praenomina
	"A", "Agr", "Ap", "C", "Cn", "D", "F", "K", "L",
	"M'", "M", "Mam", "N", "Oct", "Opet", "P", "Paul",
	"Post", "Pro", "Q", "S", "Ser", "Sert", "Sex", "Sp",
	"St", "Sta", "T", "Ti", "V", "Vol", "Vop",
	// Calendar terms; "a" and "d" cover the spaced "a. d. VIII Kal." form
	"Kal", "Non", "Id", "a.d", "a", "d", "pr",
	// Month names as abbreviated in dates
	"Ian", "Feb", "Mart", "Apr", "Mai", "Iun",
	"Quint", "Sext", "Sept", "Nov", "Dec",
	// Common scribal abbreviations
	"cos", "coss", "tr", "pl", "leg", "imp",
}

// Latin returns the builtin abbreviation set for classical Latin prose:
// Roman praenomina, calendar terms and common scribal abbreviations.
func Latin() List {
	out := make(List, len(latinAbbreviations))
	copy(out, latinAbbreviations)
	return out
}
