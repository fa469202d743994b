package consts

const (
	ReminderLatestKey = "journal:reminder:latest"
)

const (
	JournalMutationLock = "journal:mutation:lock"
	ReminderFireLock    = "journal:reminder:fire:lock"
)

const (
	StreakStateKey = "journal:streak:state"
)
