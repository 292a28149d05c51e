package scopefilter

// Record is any entity carrying optional organizational-hierarchy
// identifiers. The engine is generic over this shape: callers with their own
// entity types implement Record directly, callers working with loosely typed
// data use RecordFields.
//
// A nil return means the entity is not scoped at that granularity. How an
// absent identifier is interpreted depends on the role doing the asking; see
// FilterCollection.
type Record interface {
	CompanyID() *int64
	DirectorateID() *int64
	RegionalID() *int64
	BranchID() *int64
	SalespersonID() *int64
	UserID() *int64
}

// RecordFields is a ready-made Record for callers that do not have a typed
// entity, such as the HTTP authorization endpoints.
type RecordFields struct {
	Company     *int64 `json:"companyId,omitempty"`
	Directorate *int64 `json:"directorateId,omitempty"`
	Regional    *int64 `json:"regionalId,omitempty"`
	Branch      *int64 `json:"branchId,omitempty"`
	Salesperson *int64 `json:"salespersonId,omitempty"`
	User        *int64 `json:"userId,omitempty"`
}

func (r RecordFields) CompanyID() *int64     { return r.Company }
func (r RecordFields) DirectorateID() *int64 { return r.Directorate }
func (r RecordFields) RegionalID() *int64    { return r.Regional }
func (r RecordFields) BranchID() *int64      { return r.Branch }
func (r RecordFields) SalespersonID() *int64 { return r.Salesperson }
func (r RecordFields) UserID() *int64        { return r.User }

// idsEqual reports whether both identifiers are present and equal.
func idsEqual(a, b *int64) bool {
	return a != nil && b != nil && *a == *b
}

// idsConflict reports whether both identifiers are present and different.
func idsConflict(a, b *int64) bool {
	return a != nil && b != nil && *a != *b
}
