package shared

type Error string

// Implement the error interface
func (e Error) Error() string { return string(e) }

//------------
// Definitions
//------------

// store errors
const (
	ErrStorageInit    = Error("storage initialization failed")
	ErrQueryExecution = Error("query execution failed")
	ErrNotFound       = Error("not found")
	ErrInvalidQuery   = Error("invalid query")
	ErrDataIntegrity  = Error("data integrity violation")
)

// service errors
const ErrValidation = Error("validation failed")

// cli errors
const (
	ErrorCreateFile = Error("could not create the file")
	ErrorEncodeFile = Error("could not encode to file")
)
