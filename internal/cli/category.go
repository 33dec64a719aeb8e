package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"planflow/internal/service"
)

func newCategoryCmd(planner *service.Planner) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"cat"},
		Short:   "Manage categories",
	}
	cmd.AddCommand(
		newCategoryAddCmd(planner),
		newCategoryListCmd(planner),
		newCategoryEditCmd(planner),
		newCategoryRmCmd(planner),
	)
	return cmd
}

func newCategoryAddCmd(planner *service.Planner) *cobra.Command {
	var colorBg, colorText string
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := planner.Categories.Add(args[0], colorBg, colorText)
			if err != nil {
				return err
			}
			fmt.Printf("%s  %s\n", gray(shortID(cat.ID)), cyan(cat.Name))
			return nil
		},
	}
	cmd.Flags().StringVar(&colorBg, "bg", "", "background color token")
	cmd.Flags().StringVar(&colorText, "fg", "", "text color token")
	return cmd
}

func newCategoryListCmd(planner *service.Planner) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			categories := planner.Categories.List()
			if len(categories) == 0 {
				fmt.Println(gray("no categories"))
				return nil
			}

			// Usage counts across tasks and habits.
			taskCounts := make(map[string]int)
			for _, t := range planner.Tasks.All() {
				if t.Category != nil {
					taskCounts[t.Category.ID]++
				}
			}
			habitCounts := make(map[string]int)
			for _, h := range planner.Habits.All() {
				if h.Category != nil {
					habitCounts[h.Category.ID]++
				}
			}

			for _, cat := range categories {
				fmt.Printf("%s  %s  %s\n",
					gray(shortID(cat.ID)),
					cyan(cat.Name),
					gray(fmt.Sprintf("%d task(s), %d habit(s)", taskCounts[cat.ID], habitCounts[cat.ID])))
			}
			return nil
		},
	}
}

func newCategoryEditCmd(planner *service.Planner) *cobra.Command {
	var name, colorBg, colorText string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a category (changes propagate to tagged tasks and habits)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := resolveCategory(planner, args[0])
			if err != nil {
				return err
			}
			if name == "" {
				name = cat.Name
			}
			if colorBg == "" {
				colorBg = cat.ColorBg
			}
			if colorText == "" {
				colorText = cat.ColorText
			}
			planner.Categories.Edit(cat.ID, name, colorBg, colorText)
			fmt.Printf("%s  %s\n", gray(shortID(cat.ID)), cyan(name))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&colorBg, "bg", "", "background color token")
	cmd.Flags().StringVar(&colorText, "fg", "", "text color token")
	return cmd
}

func newCategoryRmCmd(planner *service.Planner) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a category",
		Long: `Delete a category.

Tasks and habits tagged with it are kept; their snapshot becomes an orphaned
reference shown as uncategorized.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := resolveCategory(planner, args[0])
			if err != nil {
				return err
			}
			planner.Categories.Delete(cat.ID)
			fmt.Println("deleted", cat.Name)
			return nil
		},
	}
}
