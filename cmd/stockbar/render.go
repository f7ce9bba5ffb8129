package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"stockbar/pkg/format"
	"stockbar/pkg/i18n"
	"stockbar/pkg/market"
	"stockbar/pkg/quote"
)

func newTable(w io.Writer) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.Style().Options.DrawBorder = false
	tw.Style().Options.SeparateRows = false
	tw.Style().Options.SeparateColumns = false
	return tw
}

func renderStocks(w io.Writer, a *app, stocks []quote.Stock) {
	tw := newTable(w)
	tw.AppendHeader(table.Row{
		"",
		i18n.Translate(a.tr, "Name", "Name"),
		i18n.Translate(a.tr, "Code", "Code"),
		i18n.Translate(a.tr, "Price", "Price"),
		i18n.Translate(a.tr, "Change", "Change"),
		i18n.Translate(a.tr, "Percent", "Percent"),
	})
	cols := a.cfg.Columns
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: cells(cols.Name)},
		{Number: 3, WidthMax: cells(cols.Code)},
		{Number: 4, WidthMax: cells(cols.Price), Align: text.AlignRight},
		{Number: 5, WidthMax: cells(cols.Change), Align: text.AlignRight},
		{Number: 6, WidthMax: cells(cols.Percent), Align: text.AlignRight},
	})

	for _, s := range stocks {
		color := termColor(a.palette.ChangeColor(s.ChangeAmount))
		tw.AppendRow(table.Row{
			market.CountryEmoji(s.Code),
			s.Name,
			market.PureCode(s.Code),
			color.Sprint(format.Number(s.CurrentPrice, 2)),
			color.Sprint(format.Change(s.ChangeAmount, 2)),
			color.Sprint(format.Percent(s.ChangePercent, 2)),
		})
	}

	tw.SetCaption("%d %s, %s%s",
		quote.DisplayCount(stocks, a.cfg.API.IndexCode),
		i18n.Translate(a.tr, "Stocks", "stocks"),
		i18n.Translate(a.tr, "Updated: ", "Updated: "),
		format.CurrentTimeString(a.market))
	tw.Render()
}

func renderSuggestions(w io.Writer, a *app, suggestions []quote.Suggestion) {
	tw := newTable(w)
	tw.AppendHeader(table.Row{
		i18n.Translate(a.tr, "Stock Name", "Stock Name"),
		i18n.Translate(a.tr, "Stock Code", "Stock Code"),
		"",
	})
	for _, s := range suggestions {
		tw.AppendRow(table.Row{s.Name, s.Code, s.PureCode})
	}
	tw.Render()
}

// renderBar 按配置的显示模式输出状态栏文本，指数行不显示，最多 MaxStocks 只
func renderBar(w io.Writer, a *app, stocks []quote.Stock) {
	display := a.cfg.Display
	valueMode := format.ValueMode(display.ValueMode)
	nameMode := format.NameMode(display.NameMode)

	parts := make([]string, 0, display.MaxStocks)
	for i := range stocks {
		if market.IsMarketIndex(stocks[i].Code, a.cfg.API.IndexCode) {
			continue
		}
		if len(parts) == display.MaxStocks {
			break
		}
		color := termColor(a.palette.ChangeColor(stocks[i].ChangeAmount))
		parts = append(parts, color.Sprint(format.BarText(&stocks[i], valueMode, nameMode)))
	}

	if len(parts) == 0 {
		fmt.Fprintln(w, i18n.Translate(a.tr, "No stocks tracked", "No stocks tracked"))
		return
	}
	fmt.Fprintln(w, strings.Join(parts, "  "))
}

// cells 把像素列宽换算成终端字符宽度，按每字符 8 像素
func cells(px int) int {
	return max(1, px/8)
}

// termColor 把配色中的 #rrggbb 映射到终端颜色，取占优的通道
func termColor(hex string) text.Colors {
	v, err := strconv.ParseUint(strings.TrimPrefix(hex, "#"), 16, 32)
	if err != nil || len(hex) != 7 {
		return nil
	}
	r, g, b := (v>>16)&0xff, (v>>8)&0xff, v&0xff

	switch {
	case r > g && r > b:
		return text.Colors{text.FgHiRed}
	case g > r && g > b:
		return text.Colors{text.FgHiGreen}
	case b > r && b > g:
		return text.Colors{text.FgHiBlue}
	case r >= 0xcc:
		return text.Colors{text.FgHiWhite}
	default:
		return text.Colors{text.FgHiBlack}
	}
}
