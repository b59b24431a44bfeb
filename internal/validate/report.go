package validate

import (
	"bufio"
	"fmt"
	"io"
	"os"

	apperr "db-audit/internal/errors"
)

// Labels holds the localized text of a report.
type Labels struct {
	Header        string
	Total         string
	Succeeded     string
	Failed        string
	Rate          string
	DetailsHeader string
	FailedQuery   string
	Reason        string
	Expected      string
	Actual        string
	ErrorMessage  string

	Mismatch   string
	Execution  string
	Unexpected string
}

var reportLabels = map[string]Labels{
	"ko": {
		Header:        "--- SQL 쿼리 실행 통계 ---",
		Total:         "총 쿼리 수: %d개",
		Succeeded:     "성공한 쿼리 수: %d개",
		Failed:        "실패한 쿼리 수: %d개",
		Rate:          "성공률: %.2f%%",
		DetailsHeader: "--- 실패한 SQL 쿼리 상세 내역 ---",
		FailedQuery:   "[%d] 실패 쿼리:",
		Reason:        "실패 원인: %s",
		Expected:      "  - 예상 행 수: %s개",
		Actual:        "  - 실제 행 수: %d개",
		ErrorMessage:  "  - 오류 메시지: %s",
		Mismatch:      "행 개수 불일치",
		Execution:     "SQL 실행 오류",
		Unexpected:    "예기치 않은 오류",
	},
	"en": {
		Header:        "--- SQL Query Execution Summary ---",
		Total:         "Total queries: %d",
		Succeeded:     "Succeeded: %d",
		Failed:        "Failed: %d",
		Rate:          "Success rate: %.2f%%",
		DetailsHeader: "--- Failed SQL Query Details ---",
		FailedQuery:   "[%d] Failed query:",
		Reason:        "Reason: %s",
		Expected:      "  - Expected rows: %s",
		Actual:        "  - Actual rows: %d",
		ErrorMessage:  "  - Error message: %s",
		Mismatch:      "row count mismatch",
		Execution:     "SQL execution error",
		Unexpected:    "unexpected error",
	},
}

// DefaultLanguage is used when an unknown language is requested.
const DefaultLanguage = "ko"

// LabelsFor returns the labels for lang, falling back to DefaultLanguage.
func LabelsFor(lang string) Labels {
	if l, ok := reportLabels[lang]; ok {
		return l
	}
	return reportLabels[DefaultLanguage]
}

// ReasonLabel returns the localized failure reason of an outcome.
func (l Labels) ReasonLabel(s Status) string {
	switch s {
	case RowCountMismatch:
		return l.Mismatch
	case ExecutionError:
		return l.Execution
	default:
		return l.Unexpected
	}
}

// WriteReport renders the summary as plain text.
func WriteReport(w io.Writer, s *Summary, lang string) error {
	l := LabelsFor(lang)
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, l.Header)
	fmt.Fprintf(bw, l.Total+"\n", s.Total)
	fmt.Fprintf(bw, l.Succeeded+"\n", s.Succeeded)
	fmt.Fprintf(bw, l.Failed+"\n", s.Failed())
	fmt.Fprintf(bw, l.Rate+"\n", s.SuccessRate())

	if len(s.Failures) > 0 {
		fmt.Fprintf(bw, "\n\n%s\n", l.DetailsHeader)
		for _, o := range s.Failures {
			fmt.Fprintf(bw, "\n"+l.FailedQuery+"\n", o.Index)
			fmt.Fprintln(bw, o.SQL)
			fmt.Fprintf(bw, l.Reason+"\n", l.ReasonLabel(o.Status))
			if o.Status == RowCountMismatch {
				fmt.Fprintf(bw, l.Expected+"\n", o.Expected)
				fmt.Fprintf(bw, l.Actual+"\n", *o.Actual)
			} else {
				fmt.Fprintf(bw, l.ErrorMessage+"\n", o.Message())
			}
		}
	}
	return bw.Flush()
}

// SaveReport writes the report to path, replacing any previous file.
func SaveReport(path string, s *Summary, lang string) error {
	f, err := os.Create(path)
	if err != nil {
		return apperr.Wrap(apperr.OutputError, fmt.Sprintf("cannot create %s", path), err)
	}
	if err := WriteReport(f, s, lang); err != nil {
		f.Close()
		return apperr.Wrap(apperr.OutputError, fmt.Sprintf("cannot write %s", path), err)
	}
	if err := f.Close(); err != nil {
		return apperr.Wrap(apperr.OutputError, fmt.Sprintf("cannot write %s", path), err)
	}
	return nil
}
