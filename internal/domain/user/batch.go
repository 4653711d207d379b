package user

// Batch is the unit of queueing, retry and transactional insertion: up to
// chunk-size records from one upload, in input order. Attempts counts
// persistence attempts made so far.
type Batch struct {
	UploadID string
	FileName string
	Records  []User
	Attempts int
}
