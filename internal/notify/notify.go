package notify

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Domenick1991/tripplanner/internal/domain"
	"github.com/Domenick1991/tripplanner/internal/report"
)

// Sender delivers finished plans to the person who requested them. For now
// that is a text report on a writer.
type Sender struct {
	out io.Writer
}

func NewSender() *Sender {
	return NewWriterSender(os.Stdout)
}

func NewWriterSender(w io.Writer) *Sender {
	return &Sender{out: w}
}

func (s *Sender) Send(ctx context.Context, plan *domain.Plan) error {
	if _, err := fmt.Fprintf(s.out, "Plan %s: %d route(s)\n", plan.ID, len(plan.Itineraries)); err != nil {
		return err
	}
	return report.Render(s.out, plan.Itineraries)
}

func (s *Sender) SendFailure(ctx context.Context, id string, cause error) error {
	_, err := fmt.Fprintf(s.out, "Plan %s failed: %v\n", id, cause)
	return err
}
