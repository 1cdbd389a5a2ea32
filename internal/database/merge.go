package database

// MergeCase copies every populated field of src onto dst. Absent or blank
// values in src never clear what dst already holds.
func MergeCase(dst, src *Case) {
	if src.Kind != "" {
		dst.Kind = src.Kind
	}

	for _, f := range []struct{ dst, src **string }{
		{&dst.Title, &src.Title},
		{&dst.FilingNumber, &src.FilingNumber},
		{&dst.FilingDate, &src.FilingDate},
		{&dst.RegistrationNumber, &src.RegistrationNumber},
		{&dst.RegistrationDate, &src.RegistrationDate},
		{&dst.Stage, &src.Stage},
		{&dst.FirstHearingDate, &src.FirstHearingDate},
		{&dst.NextHearingDate, &src.NextHearingDate},
		{&dst.DecisionDate, &src.DecisionDate},
		{&dst.Coram, &src.Coram},
		{&dst.BenchType, &src.BenchType},
		{&dst.JudicialBranch, &src.JudicialBranch},
		{&dst.State, &src.State},
		{&dst.District, &src.District},
		{&dst.Category, &src.Category},
		{&dst.SubCategory, &src.SubCategory},
		{&dst.CaseType, &src.CaseType},
		{&dst.CourtNumberAndJudge, &src.CourtNumberAndJudge},
		{&dst.DiaryNumber, &src.DiaryNumber},
		{&dst.DiaryFiledOn, &src.DiaryFiledOn},
		{&dst.DiarySection, &src.DiarySection},
		{&dst.DiaryStatus, &src.DiaryStatus},
		{&dst.PresentLastListedOn, &src.PresentLastListedOn},
		{&dst.CategoryCode, &src.CategoryCode},
		{&dst.VerificationDate, &src.VerificationDate},
	} {
		if v := *f.src; v != nil && *v != "" {
			value := *v
			*f.dst = &value
		}
	}

	if len(src.BenchComposition) > 0 && string(src.BenchComposition) != "null" && string(src.BenchComposition) != "[]" {
		dst.BenchComposition = append(dst.BenchComposition[:0:0], src.BenchComposition...)
	}
}
