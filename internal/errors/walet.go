package errors

// WaletEntityName identifies the walet entity in alerts and error payloads.
const WaletEntityName = "waletApiWalet"

var (
	ErrWaletIDExists   = NewBadRequestAlert("A new walet cannot already have an ID", WaletEntityName, "idexists")
	ErrWaletIDNull     = NewBadRequestAlert("Invalid id", WaletEntityName, "idnull")
	ErrWaletIDInvalid  = NewBadRequestAlert("Invalid ID", WaletEntityName, "idinvalid")
	ErrWaletIDNotFound = NewBadRequestAlert("Entity not found", WaletEntityName, "idnotfound")

	ErrWaletNotFound = &DomainError{
		Code:    "WALET_NOT_FOUND",
		Message: "walet not found",
	}
)
