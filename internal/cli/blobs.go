// Package cli: blob transfer and listing commands.
package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/goironbox/ironboxdx-go/internal/api"
	"github.com/goironbox/ironboxdx-go/internal/models"
	"github.com/goironbox/ironboxdx-go/internal/util/paths"
)

// newBlobsCmd creates the 'blob' command group.
func newBlobsCmd() *cobra.Command {
	blobCmd := &cobra.Command{
		Use:   "blob",
		Short: "Blob operations (upload, download, list, delete)",
		Long:  `Commands for moving blobs in and out of server-side encrypted containers.`,
	}

	blobCmd.AddCommand(newBlobUploadCmd())
	blobCmd.AddCommand(newBlobUploadTextCmd())
	blobCmd.AddCommand(newBlobDownloadCmd())
	blobCmd.AddCommand(newBlobListCmd())
	blobCmd.AddCommand(newBlobDeleteCmd())

	return blobCmd
}

// newBlobUploadCmd creates the 'blob upload' command.
func newBlobUploadCmd() *cobra.Command {
	var (
		blobName       string
		description    string
		accessPassword string
	)

	cmd := &cobra.Command{
		Use:   "upload <container-public-id> <file>",
		Short: "Upload a file to a server-side encrypted container",
		Long: `Upload a local file as a blob.

Examples:
  # Upload under the file's own name
  ironboxdx blob upload cont123 ./results.tar.gz

  # Upload under a different blob name
  ironboxdx blob upload cont123 ./results.tar.gz --name run-42.tar.gz`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			containerID, src := args[0], args[1]
			name := blobName
			if name == "" {
				name = filepath.Base(src)
			}

			return client.UploadBlobFromPath(GetContext(), containerID, name, src, &api.UploadOptions{
				BlobDescription:         description,
				ContainerAccessPassword: accessPassword,
			})
		},
	}

	cmd.Flags().StringVar(&blobName, "name", "", "Blob name (default: source file name)")
	cmd.Flags().StringVar(&description, "description", "", "Blob description")
	cmd.Flags().StringVar(&accessPassword, "access-password", "", "Container access password (password-protected anonymous containers)")

	return cmd
}

// newBlobUploadTextCmd creates the 'blob upload-text' command.
func newBlobUploadTextCmd() *cobra.Command {
	var (
		encoding       string
		description    string
		accessPassword string
	)

	cmd := &cobra.Command{
		Use:   "upload-text <container-public-id> <blob-name> <text>",
		Short: "Upload a text string as a blob",
		Long: `Upload an in-line text string as a blob, optionally re-encoded.

Examples:
  ironboxdx blob upload-text cont123 note.txt "hello there"
  ironboxdx blob upload-text cont123 note.txt "héllo" --encoding latin1`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			return client.UploadBlobFromText(GetContext(), args[0], args[1], args[2], encoding, &api.UploadOptions{
				BlobDescription:         description,
				ContainerAccessPassword: accessPassword,
			})
		},
	}

	cmd.Flags().StringVar(&encoding, "encoding", "utf-8", "Text encoding for the blob content")
	cmd.Flags().StringVar(&description, "description", "", "Blob description")
	cmd.Flags().StringVar(&accessPassword, "access-password", "", "Container access password")

	return cmd
}

// newBlobDownloadCmd creates the 'blob download' command.
func newBlobDownloadCmd() *cobra.Command {
	var (
		output    string
		overwrite bool
	)

	cmd := &cobra.Command{
		Use:   "download <blob-public-id>",
		Short: "Download a blob to a local file",
		Long: `Download a blob. When the destination already exists the download goes
to "(1)name", "(2)name", and so on, unless --overwrite is set.

Examples:
  ironboxdx blob download blob123 --output ./results.tar.gz
  ironboxdx blob download blob123 -o ./downloads/results.tar.gz --overwrite`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return fmt.Errorf("--output is required")
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			destination := output
			if !overwrite {
				destination = paths.NextAvailablePath(output)
			}
			if destination != output {
				GetLogger().Infof("Destination exists, downloading to [%s]", destination)
			}

			if err := client.DownloadBlobToPath(GetContext(), args[0], destination); err != nil {
				return err
			}
			fmt.Println(destination)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination file path (required)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite the destination if it exists")

	return cmd
}

// newBlobListCmd creates the 'blob list' command.
func newBlobListCmd() *cobra.Command {
	var (
		skip    int
		take    int
		waiting bool
	)

	cmd := &cobra.Command{
		Use:   "list <container-public-id>",
		Short: "List the blobs of a container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			state := models.BlobStateReady
			if waiting {
				state = models.BlobStateWaitingForUpload
			}

			blobs, err := client.ListContainerBlobs(GetContext(), args[0], skip, take, state)
			if err != nil {
				return err
			}
			return printJSON(blobs)
		},
	}

	cmd.Flags().IntVar(&skip, "skip", 0, "Skip past this many blobs")
	cmd.Flags().IntVar(&take, "take", 0, "Page size (0 = server default)")
	cmd.Flags().BoolVar(&waiting, "waiting", false, "List blobs still waiting for upload instead of ready blobs")

	return cmd
}

// newBlobDeleteCmd creates the 'blob delete' command.
func newBlobDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <blob-public-id>",
		Short: "Delete a blob",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			return client.DeleteBlob(GetContext(), args[0])
		},
	}
}
