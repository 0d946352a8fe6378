package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"dochook/internal/docs"
	"dochook/internal/rules"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Documentation store utilities",
}

var docsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List documents under the docs root",
	RunE:  runDocsList,
}

var docsShowCmd = &cobra.Command{
	Use:   "show <path[#anchor]>",
	Short: "Show a document or one of its sections",
	Long: `Prints the content the engine would inject for the reference: the whole
file for a plain path, or the extracted section for path#anchor. Line caps
from the configuration apply, including the truncation marker.`,
	Args: cobra.ExactArgs(1),
	RunE: runDocsShow,
}

var docsSectionsCmd = &cobra.Command{
	Use:   "sections <path>",
	Short: "List the sections of a document with their anchor slugs",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocsSections,
}

func init() {
	docsCmd.AddCommand(docsListCmd)
	docsCmd.AddCommand(docsShowCmd)
	docsCmd.AddCommand(docsSectionsCmd)
}

func runDocsList(cmd *cobra.Command, args []string) error {
	proj, err := loadProject()
	if err != nil {
		return err
	}
	defer proj.close()

	paths, err := proj.store.List()
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		fmt.Printf("No markdown documents under %s\n", proj.store.Root())
		return nil
	}

	for _, p := range paths {
		fmt.Println(p)
	}
	return nil
}

func runDocsShow(cmd *cobra.Command, args []string) error {
	ref := rules.ParseRef(args[0])

	proj, err := loadProject()
	if err != nil {
		return err
	}
	defer proj.close()

	lines, err := proj.store.Load(ref.Path)
	if err != nil {
		return fmt.Errorf("document %s not found under %s", ref.Path, proj.store.Root())
	}

	if ref.Anchor != "" {
		section, found := docs.Extract(lines, ref.Anchor, proj.cfg.Docs.MaxSectionLines)
		if !found {
			return fmt.Errorf("section %q not found in %s", ref.Anchor, ref.Path)
		}
		lines = section
	} else {
		lines = docs.Head(lines, proj.cfg.Docs.MaxFileLines)
	}

	for _, line := range lines {
		fmt.Println(line)
	}
	return nil
}

func runDocsSections(cmd *cobra.Command, args []string) error {
	proj, err := loadProject()
	if err != nil {
		return err
	}
	defer proj.close()

	lines, err := proj.store.Load(args[0])
	if err != nil {
		return fmt.Errorf("document %s not found under %s", args[0], proj.store.Root())
	}

	sections := docs.ParseSections(lines)
	if len(sections) == 0 {
		fmt.Println("No headings found.")
		return nil
	}

	for _, sec := range sections {
		fmt.Printf("%-30s  level %d  lines %d-%d  %s\n",
			"#"+sec.Slug, sec.Level, sec.Start+1, sec.End, sec.Title)
	}
	return nil
}
