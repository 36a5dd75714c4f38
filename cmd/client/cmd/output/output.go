package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"jsonapi/internal/domain/record"
)

const (
	FormatSimple = "simple"
	FormatTable  = "table"
	FormatJSON   = "json"
)

// AddFormatFlag регистрирует флаг --format у команды
func AddFormatFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "format", "f", FormatSimple, "формат вывода (simple, table, json)")
}

// PrintCollection печатает коллекцию в выбранном формате
func PrintCollection(w io.Writer, c record.Collection, format string) error {
	switch format {
	case FormatJSON:
		data, err := c.Pretty()
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case FormatTable:
		return printTable(w, c)
	case FormatSimple, "":
		return printSimple(w, c)
	default:
		return fmt.Errorf("неизвестный формат вывода: %s", format)
	}
}

// PrintRecord печатает одну запись
func PrintRecord(w io.Writer, r record.Record, format string) error {
	if format == FormatJSON || format == FormatTable {
		return PrintCollection(w, record.Collection{r}, format)
	}
	_, err := fmt.Fprintln(w, r)
	return err
}

func printSimple(w io.Writer, c record.Collection) error {
	if len(c) == 0 {
		fmt.Fprintln(w, "Записи не найдены")
		return nil
	}

	for _, r := range c {
		if _, err := fmt.Fprintln(w, r); err != nil {
			return err
		}
	}
	return nil
}

func printTable(w io.Writer, c record.Collection) error {
	if len(c) == 0 {
		fmt.Fprintln(w, "Записи не найдены")
		return nil
	}

	// Колонки берутся из первой записи
	columns := c[0].Keys()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, col := range columns {
		fmt.Fprintf(tw, "%s\t", col)
	}
	fmt.Fprintln(tw)
	for range columns {
		fmt.Fprint(tw, "---\t")
	}
	fmt.Fprintln(tw)

	for _, r := range c {
		for _, col := range columns {
			cell := ""
			if v, err := r.Get(col); err == nil {
				cell = truncate(v.String(), 30)
			}
			fmt.Fprintf(tw, "%s\t", cell)
		}
		fmt.Fprintln(tw)
	}

	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nВсего записей: %d\n", len(c))
	return nil
}

func truncate(s string, length int) string {
	r := []rune(s)
	if len(r) <= length {
		return s
	}
	return string(r[:length-3]) + "..."
}
