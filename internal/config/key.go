package config

// Server
const (
	ServerPort  = "server.port"
	ServerMode  = "server.mode"
	ServerAddr  = "server.addr"
	AssetsDir   = "assets.dir"
	ContentPath = "content.path"
)

// Storage
const (
	DBPath             = "db.path"
	VisitorRetentionMo = "db.visitor_retention_months"
)

// Typewriter
const (
	TypewriterType  = "typewriter.type_delay"
	TypewriterErase = "typewriter.erase_delay"
	TypewriterHold  = "typewriter.hold_delay"
	TypewriterPause = "typewriter.pause_delay"
	TypewriterStart = "typewriter.start_delay"
)

// Counters
const (
	CounterDuration = "counter.duration"
	CounterInterval = "counter.interval"
)

// Page chrome
const (
	LoadingDelay       = "loading.delay"
	ScrollThreshold    = "scroll.threshold"
	TUIScrollThreshold = "tui.scroll_threshold"
)

// Icon font
const (
	IconFontHref      = "iconfont.href"
	IconFontIntegrity = "iconfont.integrity"
	IconFontProbe     = "iconfont.probe"
)

// Mail
const (
	SMTPHost = "smtp.host"
	SMTPPort = "smtp.port"
	SMTPUser = "smtp.user"
	SMTPPass = "smtp.pass"
	SMTPTo   = "smtp.to"
)

// Admin
const (
	AdminUsername = "admin.username"
	AdminPassword = "admin.password"
)

// Logs
const (
	LogsLevel = "logs.level"
	LogsJSON  = "logs.json"
)

// CLI
const (
	CliColored = "cli.colored"
)
