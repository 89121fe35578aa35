package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/spf13/cobra"
)

func (r *runner) newCreateCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an empty note and print its id",
		Long: `Create an empty note at the top of the collection.

Notes are encrypted unless --plain is given.

Examples:
  notesctl create            # new encrypted note
  notesctl create --plain    # new plaintext note`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.withNotes(cmd, func(ctx context.Context, notes service.NoteService) error {
				if !plain {
					if err := r.unlock(notes); err != nil {
						return err
					}
				}

				var note models.Note
				err := r.sealing("Creating note...", func() (err error) {
					note, err = notes.Create(ctx, !plain)
					return err
				})
				if err != nil {
					return err
				}

				printSuccess(cmd.ErrOrStderr(), "created note %q", note.Title)
				fmt.Fprintln(cmd.OutOrStdout(), note.ID)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "store the note without encryption")
	return cmd
}

func (r *runner) newSaveCmd() *cobra.Command {
	var (
		title   string
		content string
		plain   bool
	)

	cmd := &cobra.Command{
		Use:   "save <id>",
		Short: "Save a new revision of a note",
		Long: `Save a new title and content for a note.

The content is taken from --content, or read from stdin when the flag is not
given. The title is kept when --title is not given. The content is encrypted
unless --plain is given.

Examples:
  notesctl save 0190... --title "Groceries" --content "milk"
  echo "secret" | notesctl save 0190...`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("content") {
				raw, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read content: %w", err)
				}
				content = string(raw)
			}

			return r.withNotes(cmd, func(ctx context.Context, notes service.NoteService) error {
				current, err := notes.Get(args[0])
				if err != nil {
					return err
				}
				if !cmd.Flags().Changed("title") {
					title = current.Title
				}
				if !plain {
					if err = r.unlock(notes); err != nil {
						return err
					}
				}

				var note models.Note
				err = r.sealing("Saving note...", func() (err error) {
					note, err = notes.Save(ctx, args[0], title, content, !plain)
					return err
				})
				if err != nil {
					return err
				}

				printSuccess(cmd.ErrOrStderr(), "saved note %s", note.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "note title")
	cmd.Flags().StringVar(&content, "content", "", "note content (stdin when omitted)")
	cmd.Flags().BoolVar(&plain, "plain", false, "store the content without encryption")
	return cmd
}

func (r *runner) newRevealCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reveal <id>",
		Short: "Print the content of a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withNotes(cmd, func(ctx context.Context, notes service.NoteService) error {
				note, err := notes.Get(args[0])
				if err != nil {
					return err
				}

				var plaintext string
				if !note.Encrypted {
					plaintext, err = notes.Reveal(ctx, note.ID)
				} else {
					if err = r.unlock(notes); err != nil {
						return err
					}
					err = r.sealing("Decrypting note...", func() (err error) {
						plaintext, err = notes.Reveal(ctx, note.ID)
						return err
					})
				}
				if err != nil {
					return err
				}

				fmt.Fprint(cmd.OutOrStdout(), plaintext)
				return nil
			})
		},
	}
}

func (r *runner) newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Remove a note",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withNotes(cmd, func(ctx context.Context, notes service.NoteService) error {
				removed, err := notes.Remove(ctx, args[0])
				if err != nil {
					return err
				}
				if !removed {
					return fmt.Errorf("remove note %s: %w", args[0], service.ErrNotFound)
				}

				printSuccess(cmd.ErrOrStderr(), "removed note %s", args[0])
				return nil
			})
		},
	}
}

func (r *runner) newListCmd() *cobra.Command {
	var tag string

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List notes, most recent first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.withNotes(cmd, func(_ context.Context, notes service.NoteService) error {
				if tag != "" {
					printNotes(cmd.OutOrStdout(), notes.FilterByTag(tag))
					return nil
				}
				printNotes(cmd.OutOrStdout(), notes.List())
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&tag, "tag", "", "only list notes carrying this tag")
	return cmd
}

func (r *runner) newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "List notes whose title contains query, ignoring case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withNotes(cmd, func(_ context.Context, notes service.NoteService) error {
				printNotes(cmd.OutOrStdout(), notes.Search(args[0]))
				return nil
			})
		},
	}
}

func (r *runner) newTagCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tag <id> [tags...]",
		Short: "Replace the tags of a note",
		Long: `Replace the tags of a note. Tags are trimmed and repeats that differ only
in case are dropped. Giving no tags clears them.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withNotes(cmd, func(ctx context.Context, notes service.NoteService) error {
				note, err := notes.SetTags(ctx, args[0], args[1:])
				if err != nil {
					return err
				}

				printSuccess(cmd.ErrOrStderr(), "tagged note %s: %v", note.ID, note.Tags)
				return nil
			})
		},
	}
}
