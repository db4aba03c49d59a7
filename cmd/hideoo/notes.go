package main

import (
	"fmt"

	"github.com/HiDeoo/hideoo.dev/internal/notes"
	"github.com/HiDeoo/hideoo.dev/internal/utils/colors"
	"github.com/HiDeoo/hideoo.dev/internal/utils/stringutils"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var notesFlags struct {
	Count     int
	Notebooks bool
}

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "list the notes or notebooks, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		library, err := getLibrary()
		if err != nil {
			return err
		}

		if notesFlags.Notebooks {
			for _, notebook := range library.Notebooks() {
				printMeta(notebook.Title, notebook.Href, notebook.Meta)
				for _, note := range notebook.SectionNotes("") {
					fmt.Println(stringutils.Indent(colors.Faint("- "+note.Title), "  "))
				}
			}
			return nil
		}

		for _, note := range library.Notes(notesFlags.Count) {
			printMeta(note.Title, note.Href, note.Meta)
			fmt.Println(stringutils.Indent(colors.Faint(humanize.Time(note.Date)), "  "))
		}
		return nil
	},
}

func printMeta(title string, href string, meta notes.Meta) {
	fmt.Print(colors.Bold(title), " ", colors.Faint(href), "\n")
	line := meta.PublishDate + " · " + meta.ReadingTime
	if meta.UpdateDate != "" {
		line += " · updated " + meta.UpdateDate
	}
	fmt.Println(stringutils.Indent(line, "  "))
}

func init() {
	addCountFlag(notesCmd.Flags(), &notesFlags.Count, "number of notes to list (all by default)")
	notesCmd.Flags().BoolVar(
		&notesFlags.Notebooks, "notebooks", false,
		"list the notebooks instead of the notes",
	)
}
