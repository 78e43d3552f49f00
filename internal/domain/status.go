package domain

type StatusState string

const (
	StateIdle        StatusState = "idle"
	StateTranslating StatusState = "translating"
	StateReady       StatusState = "ready"
	StateError       StatusState = "error"
)

type Severity string

const (
	SeverityNormal  Severity = "normal"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

type Status struct {
	State    StatusState
	Message  string
	Severity Severity
}

func IdleStatus(message string) Status {
	return Status{State: StateIdle, Message: message, Severity: SeverityNormal}
}

func TranslatingStatus() Status {
	return Status{State: StateTranslating, Message: "translation in progress", Severity: SeverityNormal}
}

func ReadyStatus() Status {
	return Status{State: StateReady, Message: "copied to clipboard", Severity: SeveritySuccess}
}

func ErrorStatus(message string) Status {
	if message == "" {
		message = "translation failed"
	}
	return Status{State: StateError, Message: message, Severity: SeverityError}
}
