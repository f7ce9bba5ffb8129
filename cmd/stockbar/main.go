package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"stockbar/pkg/config"
	"stockbar/pkg/format"
	"stockbar/pkg/i18n"
	"stockbar/pkg/logger"
	"stockbar/pkg/market"
	"stockbar/pkg/quote"
	"stockbar/pkg/timing"
)

// app 命令共享的只读状态，在 PersistentPreRunE 中构建
type app struct {
	cfg     *config.Config
	palette format.Palette
	tr      i18n.Translator
	market  *timing.MarketTime
	log     *logrus.Entry
}

func main() {
	if err := newRootCmd(timing.DefaultMarketTime()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(mt *timing.MarketTime) *cobra.Command {
	var (
		configPath string
		logLevel   string
		locale     string
		noColor    bool
		greenUp    bool
	)
	a := &app{market: mt}

	rootCmd := &cobra.Command{
		Use:          "stockbar",
		Short:        "Inspect quote feeds the way the status bar widget renders them",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if greenUp {
				cfg.SetColors(cfg.Colors.Down, cfg.Colors.Up)
			}

			logger.Init(logger.Config{
				Level:  cfg.Logger.Level,
				Format: cfg.Logger.Format,
				Output: cmd.ErrOrStderr(),
			})
			if logLevel != "" {
				if err := logger.SetLevel(logLevel); err != nil {
					return fmt.Errorf("invalid --log-level: %w", err)
				}
			}

			if locale == "" {
				locale = cfg.Display.Locale
			}
			if locale == "" {
				locale = i18n.DetectLocale()
			}
			if noColor {
				text.DisableColors()
			}

			a.cfg = cfg
			a.palette = format.NewPalette(cfg.Colors)
			a.tr = i18n.New(locale)
			a.log = logger.WithComponent("stockbar")
			a.log.Debugf("config loaded, locale=%q", locale)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./config/stockbar.yaml or ./stockbar.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&locale, "locale", "", "UI locale, e.g. zh_CN (default from config or LANG)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&greenUp, "green-up", false, "swap trend colors: green for rise, red for fall")

	rootCmd.AddCommand(
		newParseCmd(a),
		newSuggestCmd(a),
		newBarCmd(a),
		newStatusCmd(a),
		newCompleteCmd(a),
		newURLCmd(a),
	)
	return rootCmd
}

func newParseCmd(a *app) *cobra.Command {
	var gbk bool

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a Tencent quote feed dump and print the stock table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readInput(cmd, args, gbk)
			if err != nil {
				return err
			}

			stocks := quote.ParseAPIResponse(body)
			a.log.Debugf("popout height for %d stocks: %d", len(stocks), format.PopoutHeight(stocks, a.cfg.UI, a.cfg.API.IndexCode))

			renderStocks(cmd.OutOrStdout(), a, stocks)
			return nil
		},
	}
	cmd.Flags().BoolVar(&gbk, "gbk", false, "input is GBK encoded, as returned by the quote endpoint")
	return cmd
}

func newSuggestCmd(a *app) *cobra.Command {
	var gbk bool

	cmd := &cobra.Command{
		Use:   "suggest [file]",
		Short: "Parse a Sina suggestion response",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readInput(cmd, args, gbk)
			if err != nil {
				return err
			}

			suggestions := quote.ParseSuggestions(body)
			if len(suggestions) == 0 {
				a.log.Warn("no suggestions found")
			}
			renderSuggestions(cmd.OutOrStdout(), a, suggestions)
			return nil
		},
	}
	cmd.Flags().BoolVar(&gbk, "gbk", false, "input is GBK encoded")
	return cmd
}

func newBarCmd(a *app) *cobra.Command {
	var (
		valueMode, nameMode string
		gbk                 bool
	)

	cmd := &cobra.Command{
		Use:   "bar [file]",
		Short: "Print the status bar text for a Tencent quote feed dump",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if valueMode != "" {
				a.cfg.SetValueMode(valueMode)
			}
			if nameMode != "" {
				a.cfg.SetNameMode(nameMode)
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			body, err := readInput(cmd, args, gbk)
			if err != nil {
				return err
			}

			renderBar(cmd.OutOrStdout(), a, quote.ParseAPIResponse(body))
			return nil
		},
	}
	cmd.Flags().BoolVar(&gbk, "gbk", false, "input is GBK encoded, as returned by the quote endpoint")
	cmd.Flags().StringVar(&valueMode, "value", "", "value mode: percent or amount (default from config)")
	cmd.Flags().StringVar(&nameMode, "name", "", "name mode: none, pinyin, hanzi or full (default from config)")
	return cmd
}

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show trading session state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "time:      %s\n", format.CurrentTimeString(a.market))
			fmt.Fprintf(out, "trading:   %t\n", a.market.IsTradingTime())
			fmt.Fprintf(out, "progress:  %s%%\n", format.Number(a.market.TradingProgress()*100, 1))
			fmt.Fprintf(out, "next open: %s\n", format.SmartTime(a.market.NextSessionStart(), a.market.Now()))
			return nil
		},
	}
}

func newCompleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <input>",
		Short: "Complete a 6-digit stock number with its market prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, ok := market.AutoComplete(args[0])
			if !ok {
				return fmt.Errorf("cannot complete %q: need exactly 6 digits", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), code)
			return nil
		},
	}
}

func newURLCmd(a *app) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "url [code...]",
		Short: "Print the quote request URL for the given codes, index row first",
		Long: "Codes may carry a market prefix in any case (SH600000) or be bare 6-digit numbers.\n" +
			"With --search the suggestion URL for the keyword is printed instead.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if search != "" {
				fmt.Fprintln(cmd.OutOrStdout(), quote.SuggestURL(a.cfg.API.SinaSuggest, search))
				return nil
			}

			codes, err := requestCodes(a.cfg.API.IndexCode, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), quote.QuoteURL(a.cfg.API.TencentQuote, codes))
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "print the suggestion URL for a name, code or pinyin keyword")
	return cmd
}

// requestCodes 规范化代码并把指数放在首位，去掉重复
func requestCodes(index string, args []string) ([]string, error) {
	codes := []string{market.Normalize(index)}
	seen := map[string]bool{codes[0]: true}

	for _, arg := range args {
		code := market.Normalize(arg)
		if market.PureCode(code) == code {
			completed, ok := market.AutoComplete(code)
			if !ok {
				return nil, fmt.Errorf("cannot complete %q: need a market prefix or exactly 6 digits", arg)
			}
			code = completed
		}
		if !seen[code] {
			seen[code] = true
			codes = append(codes, code)
		}
	}
	return codes, nil
}

// readInput 读取文件参数或标准输入
func readInput(cmd *cobra.Command, args []string, gbk bool) (string, error) {
	var (
		raw []byte
		err error
	)
	if len(args) == 1 && args[0] != "-" {
		raw, err = os.ReadFile(args[0])
	} else {
		raw, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}

	if gbk {
		return quote.DecodeGBK(raw), nil
	}
	return string(raw), nil
}
