package progressbar

import (
	"io"
	"time"

	pb "github.com/schollz/progressbar/v3"
)

// New returns a bar that renders to w. It implements progress.Listener.
func New(total int, w io.Writer) *pb.ProgressBar {
	return pb.NewOptions(total,
		pb.OptionSetWriter(w),
		pb.OptionSetDescription("Checking URLs"),
		pb.OptionSetItsString("url"),
		pb.OptionShowCount(),
		pb.OptionShowIts(),
		pb.OptionSetPredictTime(false),
		pb.OptionThrottle(100*time.Millisecond),
		pb.OptionFullWidth(),
		pb.OptionOnCompletion(func() { _, _ = io.WriteString(w, "\n") }),
	)
}
