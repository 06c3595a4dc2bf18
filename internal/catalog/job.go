package catalog

import (
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// RecallNoticeKind is the River kind of recall notice jobs.
const RecallNoticeKind = "RecallNoticeJob"

// RecallNoticeArgs asks the worker to publish the notice of a recorded recall.
// A recall is announced once: the recall ID is the job's unique key.
type RecallNoticeArgs struct {
	RecallID int64 `json:"recall_id" river:"unique"`

	maxAttempts int
}

func (RecallNoticeArgs) Kind() string { return RecallNoticeKind }

func (args RecallNoticeArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
