package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/iconfont"
	"github.com/Zachkp/portfolio/internal/log"
	"github.com/Zachkp/portfolio/internal/mail"
	"github.com/Zachkp/portfolio/internal/store"
	"github.com/Zachkp/portfolio/internal/web"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntP("port", "p", config.Default[config.ServerPort].Value.(int), "Port to listen on")
	lo.Must0(viper.BindPFlag(config.ServerPort, serveCmd.Flags().Lookup("port")))

	serveCmd.Flags().String("db", config.Default[config.DBPath].Value.(string),
		"SQLite database path, pass an empty value to disable tracking and the admin dashboard")
	lo.Must0(viper.BindPFlag(config.DBPath, serveCmd.Flags().Lookup("db")))
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(serve())
	},
}

func serve() error {
	settings := config.Load()
	gin.SetMode(settings.Mode)

	portfolio, err := loadContent(settings)
	if err != nil {
		return err
	}

	var st *store.Store
	if settings.DBPath != "" {
		st, err = store.Open(settings.DBPath)
		if err != nil {
			return err
		}
		defer st.Close()
	} else {
		log.Warn("no database configured: visitor tracking and the admin dashboard are off")
	}

	to := settings.SMTP.To
	if to == "" {
		to = portfolio.Contact.Email
	}
	mailer := mail.NewSMTP(settings.SMTP.Host, settings.SMTP.Port, settings.SMTP.User, settings.SMTP.Pass, to)
	if !mailer.Configured() {
		log.Warn("SMTP credentials not configured: contact messages are only stored")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sheet := iconfont.New(settings.IconFont.Href, settings.IconFont.Integrity)
	if settings.IconFont.Probe {
		iconfont.NewProber(sheet, nil, log.WithComponent("iconfont")).Start(ctx)
	}

	srv, err := web.New(web.Options{
		Settings: settings,
		Content:  portfolio,
		Store:    st,
		Mailer:   mailer,
		Assets:   afero.NewBasePathFs(afero.NewOsFs(), settings.AssetsDir),
		IconFont: sheet,
		Log:      log.WithComponent("web"),
	})
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}
