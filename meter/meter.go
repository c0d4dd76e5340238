// Package meter holds the static catalogue of classical Urdu meters: the
// regular, varied, rubai and special-meter tables the candidate tree
// matches against. The catalogue is read-only and consumed by index;
// changing the order of an array is a breaking change because numeric
// ids are exposed in results.
//
// A pattern is a string over {-, =, +, /}: "-" short, "=" long, "/" a
// cosmetic foot separator removed before matching, "+" a caesura marker
// (an optional word boundary whose presence allows the word ending
// there to scan its last syllable long). A meter name may appear more
// than once with different patterns; the dominant-meter resolver sums
// scores across all pattern variants of a name.
package meter

import "strings"

// Foot names a single metrical unit (rukn) such as "فعولن".
type Foot struct {
	Name string
	Code string // over {-, =}, one segment of the owning pattern
}

// Meter is one named entry in the catalogue: a pattern over {-, =, +, /}
// plus its printable feet decomposition. Pattern is always the feet
// codes joined in order (with "/" between feet and "+" at a caesura),
// so the two representations cannot drift apart.
type Meter struct {
	Name    string
	Pattern string
	Feet    []Foot
}

// Special is a syllable-count family (Hindi/Zamzama) with no fixed
// pattern string; its feet are generated from the matched code by the
// internal/special package.
type Special struct {
	Name string
}

// Common feet. The codes are the classical weights: fa'ūlun "-==",
// mafā'īlun "-===", fā'ilātun "=-==", and so on.
var (
	faul       = Foot{Name: "فعول", Code: "-=="}
	faulun     = Foot{Name: "فعولن", Code: "-=="}
	fal        = Foot{Name: "فعل", Code: "-="}
	fa         = Foot{Name: "فع", Code: "="}
	falun      = Foot{Name: "فعلن", Code: "=="}
	failun     = Foot{Name: "فاعلن", Code: "=-="}
	fialun     = Foot{Name: "فعِلن", Code: "--="}
	mafailun   = Foot{Name: "مفاعیلن", Code: "-==="}
	mafail     = Foot{Name: "مفاعیل", Code: "-==-"}
	failatun   = Foot{Name: "فاعلاتن", Code: "=-=="}
	failat     = Foot{Name: "فاعلات", Code: "=-=-"}
	fialatun   = Foot{Name: "فعلاتن", Code: "--=="}
	mustafilun = Foot{Name: "مستفعلن", Code: "==-="}
	mafaailun  = Foot{Name: "مفاعلن", Code: "-=-="}
	mafulu     = Foot{Name: "مفعول", Code: "==-"}
	mafulun    = Foot{Name: "مفعولن", Code: "==="}
	muftailun  = Foot{Name: "مفتعلن", Code: "=--="}
	mutafailun = Foot{Name: "متفاعلن", Code: "--=-="}
	mufaalatun = Foot{Name: "مفاعلتن", Code: "-=--="}
)

// mk builds a Meter whose pattern is its feet codes joined by "/".
func mk(name string, feet ...Foot) Meter {
	codes := make([]string, len(feet))
	for i, f := range feet {
		codes[i] = f.Code
	}
	return Meter{Name: name, Pattern: strings.Join(codes, "/"), Feet: feet}
}

// mkCaesura is mk with a "+" caesura marker inserted after foot k
// (0-based), for the دو لختی meters whose hemistich break is a real
// optional word boundary.
func mkCaesura(name string, k int, feet ...Foot) Meter {
	m := mk(name, feet...)
	segs := make([]string, len(feet))
	for i, f := range feet {
		segs[i] = f.Code
	}
	m.Pattern = strings.Join(segs[:k+1], "/") + "+" + strings.Join(segs[k+1:], "/")
	return m
}

// Regular, Varied, Rubai and SpecialMeters are concatenated in this
// order to form the catalogue's global id space:
//
//	[0, len(Regular))                                        regular
//	[len(Regular), len(Regular)+len(Varied))                  varied
//	[..+len(Varied), ..+len(Rubai))                           rubai
//	[..+len(Rubai), ..+len(Rubai)+len(SpecialMeters))         special
var (
	Regular = []Meter{
		mk("متقارب مثمن سالم", faulun, faulun, faulun, faulun),
		mk("متقارب مثمن محذوف", faulun, faulun, faulun, fal),
		mk("متقارب مثمن اثلم", falun, faulun, falun, faulun),
		mk("متقارب مثمن مضاعف", faulun, faulun, faulun, faulun, faulun, faulun, faulun, faulun),
		mk("متدارک مثمن سالم", failun, failun, failun, failun),
		mk("ہزج مثمن سالم", mafailun, mafailun, mafailun, mafailun),
		mk("ہزج مسدس محذوف", mafailun, mafailun, faulun),
		mk("ہزج مثمن اخرب مکفوف محذوف", mafulu, mafail, mafail, faulun),
		mkCaesura("مضارع مثمن اخرب", 1, mafulu, mafailun, mafulu, mafailun),
		mk("مضارع مثمن اخرب مکفوف محذوف", mafulu, failat, mafail, failun),
		mk("رمل مثمن سالم", failatun, failatun, failatun, failatun),
		mk("رمل مثمن محذوف", failatun, failatun, failatun, failun),
		mk("رمل مسدس محذوف", failatun, failatun, failun),
		mk("رمل مثمن مخبون محذوف", fialatun, fialatun, fialatun, fialun),
		mk("رمل مثمن مخبون محذوف", fialatun, fialatun, fialatun, falun),
		mk("رجز مثمن سالم", mustafilun, mustafilun, mustafilun, mustafilun),
		mk("کامل مثمن سالم", mutafailun, mutafailun, mutafailun, mutafailun),
		mk("وافر مثمن سالم", mufaalatun, mufaalatun, mufaalatun, mufaalatun),
		mk("خفیف مسدس مخبون محذوف", failatun, mafaailun, fialun),
		mk("خفیف مسدس مخبون محذوف", failatun, mafaailun, falun),
		mk("مجتث مثمن مخبون محذوف", mafaailun, fialatun, mafaailun, fialun),
		mk("مجتث مثمن مخبون محذوف", mafaailun, fialatun, mafaailun, falun),
		mk("منسرح مثمن مطوی مکسوف", muftailun, failun, muftailun, failun),
		mk("سریع مسدس مطوی مکسوف", muftailun, muftailun, failun),
		mk("بسیط مثمن سالم", mustafilun, failun, mustafilun, failun),
		mk("طویل مثمن سالم", faulun, mafailun, faulun, mafailun),
		mk("مدید مثمن سالم", failatun, failun, failatun, failun),
	}

	Varied []Meter // empty in the reference data; reserved per §3.

	// Rubai holds the quatrain catalogue: the eight canonical
	// realizations of the rubai skeleton (each "uu" slot independently
	// long or short-short) plus the four lengthened-final (مسبغ) forms
	// of the common ones. Rubai entries are named by their afail, the
	// way quatrain auzan are conventionally cited.
	Rubai = []Meter{
		mk("مفعول مفاعیل مفاعیل فعل", mafulu, mafail, mafail, fal),
		mk("مفعول مفاعیل مفاعیلن فع", mafulu, mafail, mafailun, fa),
		mk("مفعول مفاعیلن مفعول فعل", mafulu, mafailun, mafulu, fal),
		mk("مفعول مفاعیلن مفعولن فع", mafulu, mafailun, mafulun, fa),
		mk("مفعولن مفعول مفاعیل فعل", mafulun, mafulu, mafail, fal),
		mk("مفعولن مفعول مفاعیلن فع", mafulun, mafulu, mafailun, fa),
		mk("مفعولن مفعولن مفعول فعل", mafulun, mafulun, mafulu, fal),
		mk("مفعولن مفعولن مفعولن فع", mafulun, mafulun, mafulun, fa),
		mk("مفعول مفاعیل مفاعیل فعول", mafulu, mafail, mafail, faul),
		mk("مفعول مفاعیلن مفعول فعول", mafulu, mafailun, mafulu, faul),
		mk("مفعولن مفعول مفاعیل فعول", mafulun, mafulu, mafail, faul),
		mk("مفعولن مفعولن مفعول فعول", mafulun, mafulun, mafulu, faul),
	}

	SpecialMeters = []Special{
		{Name: "ہندی میٹر نوع اول"},
		{Name: "ہندی میٹر نوع دوم"},
		{Name: "ہندی میٹر نوع سوم"},
		{Name: "ہندی میٹر نوع چہارم"},
		{Name: "اصل ہندی میٹر"},
		{Name: "ہندی میٹر نوع پنجم"},
		{Name: "ہندی میٹر نوع ششم"},
		{Name: "ہندی میٹر نوع ہفتم"},
		{Name: "زمزمہ (۳۲ ہجائی)"},
		{Name: "زمزمہ (۲۴ ہجائی)"},
		{Name: "زمزمہ (۱۶ ہجائی)"},
	}
)

// Usage marks, per entry of Regular, whether the meter is in common
// circulation (1) or rare (0). The scanner does not read Usage: catalogue
// entries are tried in array order whether they are common or rare.
var Usage = []int{
	1, // متقارب مثمن سالم
	0, // متقارب مثمن محذوف
	0, // متقارب مثمن اثلم
	0, // متقارب مثمن مضاعف
	0, // متدارک مثمن سالم
	1, // ہزج مثمن سالم
	1, // ہزج مسدس محذوف
	1, // ہزج مثمن اخرب مکفوف محذوف
	1, // مضارع مثمن اخرب
	1, // مضارع مثمن اخرب مکفوف محذوف
	0, // رمل مثمن سالم
	1, // رمل مثمن محذوف
	1, // رمل مسدس محذوف
	1, // رمل مثمن مخبون محذوف (فعِلن)
	0, // رمل مثمن مخبون محذوف (فعلن)
	0, // رجز مثمن سالم
	0, // کامل مثمن سالم
	0, // وافر مثمن سالم
	1, // خفیف مسدس مخبون محذوف (فعِلن)
	1, // خفیف مسدس مخبون محذوف (فعلن)
	1, // مجتث مثمن مخبون محذوف (فعِلن)
	1, // مجتث مثمن مخبون محذوف (فعلن)
	0, // منسرح مثمن مطوی مکسوف
	0, // سریع مسدس مطوی مکسوف
	0, // بسیط مثمن سالم
	0, // طویل مثمن سالم
	0, // مدید مثمن سالم
}

// SpecialBase is the global id of the first special meter: the index
// immediately following the rubai block.
func SpecialBase() int {
	return len(Regular) + len(Varied) + len(Rubai)
}

// RubaiBase is the global id of the first rubai meter.
func RubaiBase() int {
	return len(Regular) + len(Varied)
}

// Afail renders a meter's feet as a printable, space-joined string of
// foot names, e.g. "فعولن فعولن فعولن فعولن".
func Afail(m Meter) string {
	names := make([]string, len(m.Feet))
	for i, f := range m.Feet {
		names[i] = f.Name
	}
	return strings.Join(names, " ")
}

// AfailList returns the (name, code) pairs making up a meter's feet, in
// order, for callers that need the codes alongside their names.
func AfailList(m Meter) []Foot {
	return append([]Foot(nil), m.Feet...)
}
