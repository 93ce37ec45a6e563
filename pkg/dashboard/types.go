package dashboard

import "portvr/painel/pkg/export"

// WorkerStatus is the availability of a worker.
type WorkerStatus string

const (
	WorkerAvailable WorkerStatus = "available"
	WorkerTraining  WorkerStatus = "training"
	WorkerOffDuty   WorkerStatus = "off-duty"
)

// TrainingStatus is the state of a training session.
type TrainingStatus string

const (
	TrainingInProgress TrainingStatus = "in-progress"
	TrainingCompleted  TrainingStatus = "completed"
	TrainingPaused     TrainingStatus = "paused"
)

// TrainingProgress tracks the module a worker is currently taking.
type TrainingProgress struct {
	CurrentModule          string
	ProgressPercentage     int
	ExpectedCompletionDate string // YYYY-MM-DD
	LastActivity           string // YYYY-MM-DD
}

// Worker is a port worker enrolled in VR training.
type Worker struct {
	ID                 string
	Name               string
	Position           string
	Department         string
	Status             WorkerStatus
	CompletedTrainings int
	PendingTrainings   int
	Avatar             string // empty when unset

	// TrainingProgress is nil for workers without a module in progress.
	TrainingProgress *TrainingProgress
}

// Record flattens the worker into an export record. Training progress
// fields are always present so every worker shares the same columns.
func (w Worker) Record() export.Record {
	rec := export.Record{
		{Name: "id", Value: w.ID},
		{Name: "name", Value: w.Name},
		{Name: "position", Value: w.Position},
		{Name: "department", Value: w.Department},
		{Name: "status", Value: string(w.Status)},
		{Name: "completedTrainings", Value: w.CompletedTrainings},
		{Name: "pendingTrainings", Value: w.PendingTrainings},
		{Name: "avatar", Value: optional(w.Avatar)},
	}

	var module, expected, last any
	var pct any
	if p := w.TrainingProgress; p != nil {
		module, pct, expected, last = p.CurrentModule, p.ProgressPercentage, p.ExpectedCompletionDate, p.LastActivity
	}
	return append(rec,
		export.Field{Name: "currentModule", Value: module},
		export.Field{Name: "progressPercentage", Value: pct},
		export.Field{Name: "expectedCompletionDate", Value: expected},
		export.Field{Name: "lastActivity", Value: last},
	)
}

// ActiveTraining is a VR training session currently tracked on the
// dashboard.
type ActiveTraining struct {
	ID             string
	WorkerName     string
	Department     string
	TrainingModule string
	Progress       int
	StartTime      string // HH:MM
	Duration       string // MM:SS
	Status         TrainingStatus
}

// Record flattens the training into an export record.
func (a ActiveTraining) Record() export.Record {
	return export.Record{
		{Name: "id", Value: a.ID},
		{Name: "workerName", Value: a.WorkerName},
		{Name: "department", Value: a.Department},
		{Name: "trainingModule", Value: a.TrainingModule},
		{Name: "progress", Value: a.Progress},
		{Name: "startTime", Value: a.StartTime},
		{Name: "duration", Value: a.Duration},
		{Name: "status", Value: string(a.Status)},
	}
}

// PerformanceData is one month of aggregated training performance.
type PerformanceData struct {
	Month          string
	Accuracy       int
	CompletionTime int
	SafetyScore    int
}

// Record flattens the data point into an export record.
func (p PerformanceData) Record() export.Record {
	return export.Record{
		{Name: "name", Value: p.Month},
		{Name: "accuracy", Value: p.Accuracy},
		{Name: "completionTime", Value: p.CompletionTime},
		{Name: "safetyScore", Value: p.SafetyScore},
	}
}

// HistoryEntry is a completed training session.
type HistoryEntry struct {
	ID             string
	WorkerName     string
	TrainingModule string
	CompletionDate string // YYYY-MM-DD
	Duration       string
	Score          int
	Status         TrainingStatus
}

// Record flattens the entry into an export record.
func (h HistoryEntry) Record() export.Record {
	return export.Record{
		{Name: "id", Value: h.ID},
		{Name: "workerName", Value: h.WorkerName},
		{Name: "trainingModule", Value: h.TrainingModule},
		{Name: "completionDate", Value: h.CompletionDate},
		{Name: "duration", Value: h.Duration},
		{Name: "score", Value: h.Score},
		{Name: "status", Value: string(h.Status)},
	}
}

func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}
