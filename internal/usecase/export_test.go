package usecase

// StatusForOutcome exposes statusForOutcome to external tests.
var StatusForOutcome = statusForOutcome
