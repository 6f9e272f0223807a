package screening

import "errors"

var (
	ErrUnreadableResume    = errors.New("could not extract text from resume")
	ErrUnsupportedFileType = errors.New("unsupported resume file type")
)
