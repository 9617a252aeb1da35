package wiring

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"deja/internal/jira"
	"deja/internal/match"
	"deja/internal/report"
)

type stubSource struct {
	tickets map[string]jira.Ticket
}

func (s *stubSource) GetTicket(_ context.Context, key string) (*jira.Ticket, error) {
	t, ok := s.tickets[key]
	if !ok {
		return nil, jira.ErrNotFound
	}
	return &t, nil
}

type stubSearcher struct {
	tickets []jira.Ticket
}

func (s *stubSearcher) Search(_ context.Context, _ string, _ int) ([]jira.Ticket, error) {
	return s.tickets, nil
}

func (s *stubSearcher) SearchProjectsIssueTypes(_ context.Context, _ string, _, _ []string, _ int) ([]jira.Ticket, error) {
	return s.tickets, nil
}

var _ = ginkgo.Describe("Run", func() {
	target := jira.Ticket{
		Key:     "PLAT-100",
		Summary: "DialogGPT: Repeat Response Event firing incorrectly for imported app",
	}
	related := jira.Ticket{
		Key:     "PLAT-200",
		Summary: "DialogGPT task failure event",
		Status:  "Closed",
	}
	unrelated := jira.Ticket{
		Key:     "PLAT-300",
		Summary: "Admin console migration import",
	}

	ginkgo.It("ranks the related ticket and writes both exports", func() {
		source := &stubSource{tickets: map[string]jira.Ticket{target.Key: target}}
		searcher := &stubSearcher{tickets: []jira.Ticket{target, related, unrelated}}

		dir := ginkgo.GinkgoT().TempDir()
		params := Params{
			TargetKey:   "PLAT-100",
			JSONPath:    filepath.Join(dir, "analysis.json"),
			SummaryPath: filepath.Join(dir, "summary.txt"),
		}

		results, err := Run(context.Background(), source, searcher, nil, params)
		gomega.Expect(err).To(gomega.Succeed())
		gomega.Expect(results).To(gomega.HaveLen(1))
		gomega.Expect(results[0].Ticket.Key).To(gomega.Equal("PLAT-200"))
		gomega.Expect(results[0].Score).To(gomega.BeNumerically(">=", match.DefaultThreshold))

		data, err := os.ReadFile(params.JSONPath)
		gomega.Expect(err).To(gomega.Succeed())
		var export report.Export
		gomega.Expect(json.Unmarshal(data, &export)).To(gomega.Succeed())
		gomega.Expect(export.TargetTicket.Key).To(gomega.Equal("PLAT-100"))
		gomega.Expect(export.Threshold).To(gomega.Equal(match.DefaultThreshold))
		gomega.Expect(export.SimilarCount).To(gomega.Equal(1))

		summary, err := os.ReadFile(params.SummaryPath)
		gomega.Expect(err).To(gomega.Succeed())
		gomega.Expect(string(summary)).To(gomega.ContainSubstring("PLAT-200"))
	})

	ginkgo.It("filters tickets that share no subject terms", func() {
		source := &stubSource{tickets: map[string]jira.Ticket{target.Key: target}}
		searcher := &stubSearcher{tickets: []jira.Ticket{unrelated}}

		results, err := Run(context.Background(), source, searcher, nil, Params{TargetKey: "PLAT-100"})
		gomega.Expect(err).To(gomega.Succeed())
		gomega.Expect(results).To(gomega.BeEmpty())
	})

	ginkgo.It("returns an empty result set when nothing is found", func() {
		source := &stubSource{tickets: map[string]jira.Ticket{target.Key: target}}

		dir := ginkgo.GinkgoT().TempDir()
		params := Params{
			TargetKey: "PLAT-100",
			JSONPath:  filepath.Join(dir, "analysis.json"),
		}

		results, err := Run(context.Background(), source, &stubSearcher{}, nil, params)
		gomega.Expect(err).To(gomega.Succeed())
		gomega.Expect(results).To(gomega.BeEmpty())

		data, err := os.ReadFile(params.JSONPath)
		gomega.Expect(err).To(gomega.Succeed())
		var export report.Export
		gomega.Expect(json.Unmarshal(data, &export)).To(gomega.Succeed())
		gomega.Expect(export.SimilarCount).To(gomega.BeZero())
	})

	ginkgo.It("fails when the target ticket does not exist", func() {
		source := &stubSource{tickets: map[string]jira.Ticket{}}

		_, err := Run(context.Background(), source, &stubSearcher{}, nil, Params{TargetKey: "PLAT-404"})
		gomega.Expect(err).To(gomega.MatchError(match.ErrTargetNotFound))
	})
})
