package syndication

// ErrorCode describes the outcome of fetching and parsing a feed source.
// The ordinal values are a stable contract for consumers.
type ErrorCode int

const (
	// Success means the feed was fetched and parsed without errors.
	Success ErrorCode = iota
	// Aborted means retrieval or parsing was cancelled by the caller.
	Aborted
	// Timeout means the download timed out.
	Timeout
	// UnknownHost means the hostname could not be resolved.
	UnknownHost
	// FileNotFound means the host answered but reported the resource missing.
	FileNotFound
	// OtherRetrieverError covers retriever failures not listed above.
	OtherRetrieverError
	// InvalidXml means the source was not well-formed XML and no parser
	// accepted it.
	InvalidXml
	// XmlNotAccepted means the source is well-formed XML but no registered
	// format claims it.
	XmlNotAccepted
	// InvalidFormat means a parser accepted the source but could not
	// produce a usable document.
	InvalidFormat
)

func (e ErrorCode) String() string {
	switch e {
	case Success:
		return "success"
	case Aborted:
		return "aborted"
	case Timeout:
		return "timeout"
	case UnknownHost:
		return "unknown host"
	case FileNotFound:
		return "file not found"
	case OtherRetrieverError:
		return "retriever error"
	case InvalidXml:
		return "invalid XML"
	case XmlNotAccepted:
		return "XML not accepted"
	case InvalidFormat:
		return "invalid format"
	default:
		return "unknown error"
	}
}
