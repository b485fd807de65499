// Package config registers every setting with its default and description,
// binds them to the environment and an optional portfolio.toml, and exposes
// a typed snapshot for the rest of the program.
package config

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/Zachkp/portfolio/internal/effect"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	Name      = "portfolio"
	EnvPrefix = "PORTFOLIO"
)

// EnvKeyReplacer turns "smtp.host" into "smtp_host".
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Field is a registered setting.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Env returns the prefixed environment variable for the field.
func (f Field) Env() string {
	return EnvPrefix + "_" + strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
}

// Default holds every registered field by key.
var Default = make(map[string]Field)

// aliases are the bare variable names the site has always honoured.
var aliases = map[string][]string{
	ServerPort:    {"PORT"},
	SMTPHost:      {"SMTP_HOST"},
	SMTPPort:      {"SMTP_PORT"},
	SMTPUser:      {"SMTP_USER"},
	SMTPPass:      {"SMTP_PASS"},
	SMTPTo:        {"TO_EMAIL"},
	AdminUsername: {"ADMIN_USERNAME"},
	AdminPassword: {"ADMIN_PASSWORD"},
	ServerMode:    {"GIN_MODE"},
}

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
	}

	register(ServerAddr, "", "Interface to listen on, empty for all")
	register(ServerPort, 8080, "HTTP port")
	register(ServerMode, "release", "gin mode: debug, release or test")
	register(AssetsDir, "./images", "Directory served under /images")
	register(ContentPath, "", "Optional TOML file replacing the built-in portfolio content")

	register(DBPath, "portfolio.db", "SQLite database for visitors and contact messages")
	register(VisitorRetentionMo, 12, "Visitor records older than this many months are pruned")

	register(TypewriterType, 100*time.Millisecond, "Delay per typed character")
	register(TypewriterErase, 50*time.Millisecond, "Delay per erased character")
	register(TypewriterHold, 2*time.Second, "Pause on a fully typed phrase")
	register(TypewriterPause, 500*time.Millisecond, "Pause on an erased phrase before the next one")
	register(TypewriterStart, time.Second, "Delay before the first character")

	register(CounterDuration, effect.DefaultCountDuration, "Total count-up animation time")
	register(CounterInterval, effect.DefaultCountInterval, "Count-up tick interval")

	register(LoadingDelay, effect.DefaultLoadingDelay, "How long the splash screen stays up")
	register(ScrollThreshold, effect.DefaultScrollThreshold, "Scroll offset in pixels after which the navbar turns solid")
	register(TUIScrollThreshold, 3, "Scroll offset in rows after which the terminal navbar turns solid")

	register(IconFontHref, "https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.4.0/css/all.min.css", "Icon font stylesheet")
	register(IconFontIntegrity, "sha512-iecdLmaskl7CVkqkXNQ/ZH/XLlvWZOJyj7Yy7tcenmpD1ypASozpmT/E0iPtmFIB46ZmdtAc9eNBvH0H/ZpiBw==", "Subresource integrity of the icon font stylesheet")
	register(IconFontProbe, true, "Check once at startup that the icon font is reachable")

	register(SMTPHost, "smtp.gmail.com", "SMTP server for contact notifications")
	register(SMTPPort, "587", "SMTP port")
	register(SMTPUser, "", "SMTP user, contact mail is disabled when empty")
	register(SMTPPass, "", "SMTP password or app password")
	register(SMTPTo, "", "Recipient of contact notifications, defaults to the owner's email")

	register(AdminUsername, "admin", "Admin dashboard user")
	register(AdminPassword, "", "Admin dashboard password, the dashboard is disabled when empty")

	register(LogsLevel, "info", "panic, fatal, error, warn, info, debug or trace")
	register(LogsJSON, false, "Log as JSON")

	register(CliColored, true, "Colored help output")
}

// Setup installs defaults, binds the environment and reads portfolio.toml
// from the working directory when there is one.
func Setup(fs afero.Fs) error {
	viper.SetConfigName(Name)
	viper.SetConfigType("toml")
	viper.SetFs(fs)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, k := range Keys() {
		envs := append([]string{Default[k].Env()}, aliases[k]...)
		if err := viper.BindEnv(append([]string{k}, envs...)...); err != nil {
			return err
		}
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

// Keys returns every registered key in sorted order.
func Keys() []string {
	keys := lo.Keys(Default)
	sort.Strings(keys)
	return keys
}

type IconFont struct {
	Href      string
	Integrity string
	Probe     bool
}

type SMTP struct {
	Host string
	Port string
	User string
	Pass string
	To   string
}

type Admin struct {
	Username string
	Password string
}

// Settings is a typed snapshot of the configuration.
type Settings struct {
	Addr        string
	Port        int
	Mode        string
	AssetsDir   string
	ContentPath string

	DBPath          string
	RetentionMonths int

	Typewriter      effect.TypewriterTiming
	CounterDuration time.Duration
	CounterInterval time.Duration

	LoadingDelay       time.Duration
	ScrollThreshold    int
	TUIScrollThreshold int

	IconFont IconFont
	SMTP     SMTP
	Admin    Admin
}

// Load reads the current viper state.
func Load() Settings {
	return Settings{
		Addr:        viper.GetString(ServerAddr),
		Port:        viper.GetInt(ServerPort),
		Mode:        viper.GetString(ServerMode),
		AssetsDir:   viper.GetString(AssetsDir),
		ContentPath: viper.GetString(ContentPath),

		DBPath:          viper.GetString(DBPath),
		RetentionMonths: viper.GetInt(VisitorRetentionMo),

		Typewriter: effect.TypewriterTiming{
			Type:  viper.GetDuration(TypewriterType),
			Erase: viper.GetDuration(TypewriterErase),
			Hold:  viper.GetDuration(TypewriterHold),
			Pause: viper.GetDuration(TypewriterPause),
			Start: viper.GetDuration(TypewriterStart),
		},
		CounterDuration: viper.GetDuration(CounterDuration),
		CounterInterval: viper.GetDuration(CounterInterval),

		LoadingDelay:       viper.GetDuration(LoadingDelay),
		ScrollThreshold:    viper.GetInt(ScrollThreshold),
		TUIScrollThreshold: viper.GetInt(TUIScrollThreshold),

		IconFont: IconFont{
			Href:      viper.GetString(IconFontHref),
			Integrity: viper.GetString(IconFontIntegrity),
			Probe:     viper.GetBool(IconFontProbe),
		},
		SMTP: SMTP{
			Host: viper.GetString(SMTPHost),
			Port: viper.GetString(SMTPPort),
			User: viper.GetString(SMTPUser),
			Pass: viper.GetString(SMTPPass),
			To:   viper.GetString(SMTPTo),
		},
		Admin: Admin{
			Username: viper.GetString(AdminUsername),
			Password: viper.GetString(AdminPassword),
		},
	}
}
