package env

// Prefix is the prefix of all environment variables read by the tracker,
// e.g. CURRENCYTRACKER_BASE
const Prefix = "CURRENCYTRACKER"
