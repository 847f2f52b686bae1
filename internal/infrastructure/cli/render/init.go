package render

import (
	"fmt"
	"io"

	"github.com/doeshing/claudectl/internal/domain"
)

// InitUnreachable explains how to bring the vector database up.
func InitUnreachable(w io.Writer, url string) {
	fmt.Fprintf(w, "%s Cannot connect to Chroma at %s\n\n", MarkFail, url)
	fmt.Fprintln(w, "Make sure services are running:")
	fmt.Fprintln(w, "  claude-services start")
	fmt.Fprintln(w, "or start them directly:")
	fmt.Fprintln(w, "  docker compose up -d")
}

// Init writes the outcome of a vector database initialization.
func Init(w io.Writer, report domain.InitReport) {
	banner(w, "Claude Vector Database Initialization")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s Connected to Chroma at %s\n\n", MarkOK, report.URL)

	fmt.Fprintln(w, "Creating collections...")
	for _, c := range report.Collections {
		switch c.Outcome {
		case domain.CollectionCreated:
			fmt.Fprintf(w, "  %s Created collection: %s\n", MarkOK, c.Name)
		case domain.CollectionExisted:
			fmt.Fprintf(w, "  %s Collection already exists: %s\n", MarkInfo, c.Name)
		default:
			fmt.Fprintf(w, "  %s Failed to create %s: %s\n", MarkFail, c.Name, c.Err)
		}
	}
	fmt.Fprintf(w, "\n%s %d/%d collections ready\n\n", MarkOK, report.ReadyCount(), len(report.Collections))

	if s := report.Samples; s != nil {
		fmt.Fprintln(w, "Adding sample data...")
		if s.OK() {
			fmt.Fprintf(w, "  %s Added %d documents to %s\n\n", MarkOK, s.Count, s.Collection)
		} else {
			fmt.Fprintf(w, "  %s Failed to add documents to %s: %s\n\n", MarkFail, s.Collection, s.Err)
		}
	}

	if t := report.WriteTest; t != nil {
		fmt.Fprintln(w, "Testing write capability...")
		if t.OK() {
			fmt.Fprintf(w, "  %s Write test successful (%s)\n\n", MarkOK, t.ID)
		} else {
			fmt.Fprintf(w, "  %s Write test failed: %s\n\n", MarkWarn, t.Err)
		}
	}

	banner(w, "Summary")
	if report.ListErr != "" {
		fmt.Fprintf(w, "%s Could not list collections: %s\n", MarkWarn, report.ListErr)
	} else {
		fmt.Fprintf(w, "Total collections: %d\n", len(report.Existing))
		for _, c := range report.Existing {
			name := c.Name
			if name == "" {
				name = "unknown"
			}
			fmt.Fprintf(w, "  - %s\n", name)
		}
	}

	fmt.Fprintf(w, "\n%s Vector database initialization complete!\n\n", MarkOK)
	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintln(w, "  1. Configure MCP: cp ~/.claude/claude_desktop_config_docker.json")
	fmt.Fprintln(w, "     to your Claude Desktop config location")
	fmt.Fprintln(w, "  2. Restart Claude Desktop")
	fmt.Fprintln(w, "  3. Test: 'Store in memory: Test successful'")
}
