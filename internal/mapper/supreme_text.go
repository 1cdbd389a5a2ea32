package mapper

import (
	"regexp"
	"strings"

	"github.com/JustJay7/court-record-ingest/internal/normalize"
)

// The supreme court feed bundles several facts into one human-readable
// string per section. Each extractor below owns one section and returns nil
// for any part it cannot find.

const dateToken = `(\d{4}-\d{2}-\d{2}|\d{1,2}[-/.]\d{1,2}[-/.]\d{2,4}|\d{1,2}(?:st|nd|rd|th)?[\s\-]+[A-Za-z]{3,9}\.?,?[\s\-]+\d{4})`

var (
	diaryNumberLabelled = regexp.MustCompile(`(?i)diary\s*no\.?\s*[-:]?\s*(\d+\s*/\s*\d{4}|\d+)`)
	diaryNumberLeading  = regexp.MustCompile(`^\s*(\d+\s*/\s*\d{4})`)
	diaryFiledOn        = regexp.MustCompile(`(?i)filed\s+on\s*:?\s*` + dateToken)
	diarySection        = regexp.MustCompile(`(?i)\[\s*section\s*:?\s*([^\]]*?)\s*\]`)
	diaryStatus         = regexp.MustCompile(`\]\s*\(?([A-Za-z]+)`)

	listedOnDate  = regexp.MustCompile(`(?i)^\s*` + dateToken)
	listedOnBench = regexp.MustCompile(`\[([^\]]*)\]`)
	benchSplit    = regexp.MustCompile(`(?i)\s*,\s*|\s+and\s+`)

	verifiedOn   = regexp.MustCompile(`(?i)verified\s+on\s*:?\s*` + dateToken)
	registeredOn = regexp.MustCompile(`(?i)registered\s+on\s*:?\s*` + dateToken)
	caseNumber   = regexp.MustCompile(`(?i)^\s*(.+?)\s*(?:registered\s+on|\(?\s*verified\s+on|$)`)

	categoryCode = regexp.MustCompile(`^\s*(\d+)`)
)

// DiaryInfo is the parsed "Diary Info" section.
type DiaryInfo struct {
	Number  *string
	FiledOn *string
	Section *string
	Status  *string
}

// ParseDiaryInfo reads strings such as
// "Diary No. - 12345/2023 Filed on 17-11-2023 10:53 AM [SECTION: II-A] PENDING".
func ParseDiaryInfo(s string) DiaryInfo {
	s = normalize.Clean(s)
	var d DiaryInfo
	if m := diaryNumberLabelled.FindStringSubmatch(s); m != nil {
		d.Number = normalize.Text(squeezeSlash(m[1]))
	} else if m := diaryNumberLeading.FindStringSubmatch(s); m != nil {
		d.Number = normalize.Text(squeezeSlash(m[1]))
	}
	if m := diaryFiledOn.FindStringSubmatch(s); m != nil {
		d.FiledOn = normalize.Date(m[1])
	}
	if m := diarySection.FindStringSubmatch(s); m != nil {
		d.Section = normalize.Text(m[1])
	}
	if m := diaryStatus.FindStringSubmatch(s); m != nil {
		d.Status = normalize.Text(m[1])
	}
	return d
}

// ListedOn is the parsed "Present/Last Listed On" section.
type ListedOn struct {
	Date  *string
	Bench []string
}

// ParseListedOn reads a leading date followed by a bracketed bench, e.g.
// "05-12-2023 [HON'BLE MR. JUSTICE A, HON'BLE MR. JUSTICE B and HON'BLE MR. JUSTICE C]".
// Bench is never nil.
func ParseListedOn(s string) ListedOn {
	s = normalize.Clean(s)
	l := ListedOn{Bench: []string{}}
	if m := listedOnDate.FindStringSubmatch(s); m != nil {
		l.Date = normalize.Date(m[1])
	}
	if m := listedOnBench.FindStringSubmatch(s); m != nil {
		for _, member := range benchSplit.Split(m[1], -1) {
			if name := normalize.Text(member); name != nil {
				l.Bench = append(l.Bench, *name)
			}
		}
	}
	return l
}

// ParseVerifiedOn returns the date following "Verified On".
func ParseVerifiedOn(s string) *string {
	if m := verifiedOn.FindStringSubmatch(normalize.Clean(s)); m != nil {
		return normalize.Date(m[1])
	}
	return nil
}

// CaseNumber is the parsed "Case Number" section.
type CaseNumber struct {
	Number       *string
	RegisteredOn *string
	VerifiedOn   *string
}

// ParseCaseNumber reads strings such as
// "C.A. No. 001234 - 2023 Registered on 05-12-2023 (Verified On 06-12-2023)".
func ParseCaseNumber(s string) CaseNumber {
	s = normalize.Clean(s)
	c := CaseNumber{VerifiedOn: ParseVerifiedOn(s)}
	if m := registeredOn.FindStringSubmatch(s); m != nil {
		c.RegisteredOn = normalize.Date(m[1])
	}
	if m := caseNumber.FindStringSubmatch(s); m != nil {
		c.Number = normalize.Text(strings.TrimRight(m[1], " (-"))
	}
	return c
}

// ParseCategoryCode returns the leading numeric code of a category such as
// "1807-Criminal Matters : Matters relating to bail".
func ParseCategoryCode(s string) *string {
	if m := categoryCode.FindStringSubmatch(normalize.Clean(s)); m != nil {
		return normalize.Ptr(m[1])
	}
	return nil
}

func squeezeSlash(s string) string {
	return strings.Join(strings.Fields(s), "")
}
