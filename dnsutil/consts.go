package dnsutil

// V4Suffix has a leading '.' because some callers rely on strings.HasSuffix() to label
// match.
const V4Suffix = ".in-addr.arpa."
