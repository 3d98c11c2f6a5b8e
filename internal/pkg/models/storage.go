package models

// ProvisionStatus is the outcome of ensuring a bucket exists
type ProvisionStatus int

const (
	ProvisionCreated ProvisionStatus = iota
	ProvisionAlreadyOwned
	ProvisionNameCollision
	ProvisionFailed
)

func (s ProvisionStatus) String() string {
	switch s {
	case ProvisionCreated:
		return "CREATED"
	case ProvisionAlreadyOwned:
		return "ALREADY_OWNED"
	case ProvisionNameCollision:
		return "NAME_COLLISION"
	case ProvisionFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// ProvisionResult describes what happened when a bucket was ensured.
// Err is set when the bucket cannot be used by the caller.
type ProvisionResult struct {
	Bucket   string
	Status   ProvisionStatus
	Location string
	Err      error
}

// OK reports whether the bucket is usable by the caller
func (r ProvisionResult) OK() bool {
	return r.Status == ProvisionCreated || r.Status == ProvisionAlreadyOwned
}

// ObjectInfo is one entry of a bucket listing
type ObjectInfo struct {
	Key  string `json:"key"`
	Size int64  `json:"size"`
}

// UploadTarget maps a local dataset file to its landing zone key
type UploadTarget struct {
	LocalFile string `json:"local_file"`
	Key       string `json:"key"`
}

// UploadReport is one uploaded file
type UploadReport struct {
	UploadTarget
	Size int64 `json:"size"`
}

// CallerIdentity is the principal behind the configured credentials
type CallerIdentity struct {
	Account string `json:"account"`
	Arn     string `json:"arn"`
	UserID  string `json:"user_id"`
}
