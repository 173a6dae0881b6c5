package i18n

import "errors"

var (
	ErrNoTranslations    = errors.New("no translations found")
	ErrFailedToReadFile  = errors.New("failed to read translation file")
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")
	ErrInvalidStructure  = errors.New("invalid translation structure")
	ErrInvalidLanguage   = errors.New("invalid language tag")
)
