package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"routefinder/internal/adapters/distance"
	"routefinder/internal/domain"
	"routefinder/internal/services"

	"github.com/joho/godotenv"
)

// main drives the interactive prompt sequence: API key, then locations until
// "done" (or the hard cap), then one matrix lookup and the exhaustive search.
// Every failure surfaces as a single "An error occurred:" line.
func main() {
	_ = godotenv.Load()

	in := bufio.NewScanner(os.Stdin)
	out := os.Stdout

	apiKey := strings.TrimSpace(os.Getenv("GOOGLE_MAPS_API_KEY"))
	if apiKey == "" {
		key, err := promptLine(in, out, "Enter your Google Maps API key: ")
		if err != nil {
			fmt.Fprintf(out, "An error occurred: %v\n", err)
			os.Exit(1)
		}
		apiKey = key
	}

	locations, err := readLocations(in, out)
	if err != nil {
		fmt.Fprintf(out, "An error occurred: %v\n", err)
		os.Exit(1)
	}

	if err := run(context.Background(), apiKey, locations, out); err != nil {
		fmt.Fprintf(out, "An error occurred: %v\n", err)
		os.Exit(1)
	}
}

// run resolves the distance matrix, finds the shortest route, and prints the
// enumerated stops plus the total distance in kilometers.
func run(ctx context.Context, apiKey string, locations []string, out io.Writer) error {
	provider, err := distance.NewGoogleMapsProvider(apiKey)
	if err != nil {
		return err
	}

	matrix, err := provider.FetchMatrix(ctx, locations)
	if err != nil {
		return err
	}

	result, err := services.FindShortestRoute(matrix, locations)
	if err != nil {
		return err
	}

	printResult(out, result, locations)
	return nil
}

func printResult(out io.Writer, result domain.RouteResult, locations []string) {
	fmt.Fprintln(out, "\nBest Route:")
	for i, stop := range result.Stops(locations) {
		fmt.Fprintf(out, "%d: %s\n", i+1, stop)
	}
	fmt.Fprintf(out, "\nTotal Distance: %.2f km\n", result.TotalKilometers())
}

// readLocations collects location names until the user enters "done" (only
// accepted once at least two locations exist) or the hard cap is reached.
// Blank entries re-issue the prompt without counting.
func readLocations(in *bufio.Scanner, out io.Writer) ([]string, error) {
	fmt.Fprintf(
		out,
		"Enter between %d and %d locations (type 'done' when finished):\n",
		domain.MinLocations, domain.MaxLocations,
	)

	locations := make([]string, 0, domain.MaxLocations)
	for len(locations) < domain.MaxLocations {
		entry, err := promptLine(in, out, fmt.Sprintf("Location %d: ", len(locations)+1))
		if err != nil {
			return nil, err
		}

		if strings.EqualFold(entry, "done") {
			if len(locations) >= domain.MinLocations {
				break
			}
			fmt.Fprintln(out, "Please enter at least two locations.")
			continue
		}

		if entry == "" {
			continue
		}

		locations = append(locations, entry)
	}

	return locations, nil
}

func promptLine(in *bufio.Scanner, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)

	if !in.Scan() {
		if err := in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", errors.New("input closed before a value was entered")
	}

	return strings.TrimSpace(in.Text()), nil
}
