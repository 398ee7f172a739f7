// internal/domain/common/repository_common.go
package common

// SaveOptions carries write preconditions for adapters (optimistic locking).
type SaveOptions struct {
	// IfMatchVersion, when set, makes the write succeed only if the stored
	// version equals it. 0 means "the record must not exist yet".
	IfMatchVersion *int64
}

// Version returns the expected version and whether a precondition was requested.
func (o *SaveOptions) Version() (int64, bool) {
	if o == nil || o.IfMatchVersion == nil {
		return 0, false
	}
	return *o.IfMatchVersion, true
}

// IfMatch builds SaveOptions guarded by version v.
func IfMatch(v int64) *SaveOptions {
	return &SaveOptions{IfMatchVersion: &v}
}
