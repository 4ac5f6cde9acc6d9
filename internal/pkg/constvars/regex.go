package constvars

const (
	RegexDateYYYYMMDD    = `^\d{4}-\d{2}-\d{2}$`
	RegexPincode         = `^\d{5,6}$`
	RegexDataURIPrefix   = `^data:image/([a-z]+);base64,`
	RegexUnsafeObjectKey = `[^a-zA-Z0-9._-]`
	RegexDateTimeISO8601 = `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:\.\d+)?(?:Z|[+-]\d{2}:\d{2})$`
)
