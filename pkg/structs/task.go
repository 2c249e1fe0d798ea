package structs

// TaskType enumerates every unit of background work the engine knows how to run.
//
// The set is closed: the dispatcher switches exhaustively over these values and
// rejects anything else, so adding a variant means adding a dispatch branch.
type TaskType string

const (
	TaskScanLibrary                  TaskType = "ScanLibrary"
	TaskFindBooksToConvert           TaskType = "FindBooksToConvert"
	TaskFindBooksWithMissingPageHash TaskType = "FindBooksWithMissingPageHash"
	TaskFindDuplicatePagesToDelete   TaskType = "FindDuplicatePagesToDelete"
	TaskEmptyTrash                   TaskType = "EmptyTrash"
	TaskAnalyzeBook                  TaskType = "AnalyzeBook"
	TaskGenerateBookThumbnail        TaskType = "GenerateBookThumbnail"
	TaskRefreshBookMetadata          TaskType = "RefreshBookMetadata"
	TaskRefreshSeriesMetadata        TaskType = "RefreshSeriesMetadata"
	TaskAggregateSeriesMetadata      TaskType = "AggregateSeriesMetadata"
	TaskRefreshBookLocalArtwork      TaskType = "RefreshBookLocalArtwork"
	TaskRefreshSeriesLocalArtwork    TaskType = "RefreshSeriesLocalArtwork"
	TaskImportBook                   TaskType = "ImportBook"
	TaskConvertBook                  TaskType = "ConvertBook"
	TaskRepairExtension              TaskType = "RepairExtension"
	TaskRemoveHashedPages            TaskType = "RemoveHashedPages"
	TaskHashBook                     TaskType = "HashBook"
	TaskHashBookPages                TaskType = "HashBookPages"
	TaskRebuildIndex                 TaskType = "RebuildIndex"
	TaskDeleteBook                   TaskType = "DeleteBook"
	TaskDeleteSeries                 TaskType = "DeleteSeries"
)

// CopyMode says how an imported file should arrive in the library.
type CopyMode string

const (
	CopyModeCopy     CopyMode = "COPY"
	CopyModeMove     CopyMode = "MOVE"
	CopyModeHardlink CopyMode = "HARDLINK"
)

// Task is a single unit of deferred work.
//
// A task only ever carries identifiers, never the entities themselves; the
// target may change or vanish between enqueue and execution, so the consumer
// re-resolves it from the store. Tasks are immutable once enqueued.
type Task struct {
	// ID is a unique identifier for this task.
	ID string `json:"id"`

	// Type is the variant of work to perform.
	Type TaskType `json:"type"`

	// Priority orders delivery: lower values are claimed first.
	// Ties are broken FIFO by enqueue order. See priority.go for the tiers.
	Priority int `json:"priority"`

	// CreatedAt is the enqueue time, unix seconds.
	CreatedAt int64 `json:"created_at"`

	// Target identifiers; which of these is set depends on Type.
	LibraryID string `json:"library_id,omitempty"`
	SeriesID  string `json:"series_id,omitempty"`
	BookID    string `json:"book_id,omitempty"`

	// Capabilities restricts which metadata providers RefreshBookMetadata
	// runs. Empty means all.
	Capabilities []string `json:"capabilities,omitempty"`

	// ImportBook parameters.
	SourceFile      string   `json:"source_file,omitempty"`
	CopyMode        CopyMode `json:"copy_mode,omitempty"`
	DestinationName string   `json:"destination_name,omitempty"`
	UpgradeBookID   string   `json:"upgrade_book_id,omitempty"`

	// Pages are the page numbers RemoveHashedPages should delete.
	Pages []int `json:"pages,omitempty"`

	// Entities are the targets of a RebuildIndex task. Empty means everything.
	Entities []*ObjectRef `json:"entities,omitempty"`
}
