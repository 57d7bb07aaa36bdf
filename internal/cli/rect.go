package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/nexconsult/cnpj-geo/internal/geometry"
)

func rectCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "rect",
		Short: "Integer rectangle geometry",
	}

	c.AddCommand(rectIntersectCmd())
	c.AddCommand(rectAreaCmd())
	return c
}

func rectIntersectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "intersect [x1,y1,x2,y2 x1,y1,x2,y2]",
		Short: "Intersect two rectangles (the A/B/C sample when none are given)",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("expected 0 or 2 rectangles, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				a := geometry.MustNew(3, 5, 11, 11)
				b := geometry.MustNew(7, 2, 13, 7)
				c := geometry.MustNew(11, 11, 15, 13)

				printPair(out, "A", "B", a, b)
				printPair(out, "A", "C", a, c)
				printPair(out, "B", "C", b, c)
				return nil
			}

			a, err := geometry.Parse(args[0])
			if err != nil {
				return err
			}
			b, err := geometry.Parse(args[1])
			if err != nil {
				return err
			}

			printPair(out, "A", "B", a, b)
			if overlap, ok := geometry.Intersection(a, b); ok {
				fmt.Fprintf(out, "intersection(A, B): %s\n", overlap)
			}
			return nil
		},
	}
}

func printPair(out io.Writer, na, nb string, a, b geometry.Rectangle) {
	fmt.Fprintf(out, "intersects(%s, %s): %t\n", na, nb, geometry.Intersects(a, b))
	fmt.Fprintf(out, "intersection_area(%s, %s): %d\n", na, nb, geometry.IntersectionArea(a, b))
}

func rectAreaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "area <x1,y1,x2,y2>",
		Short: "Area, width and height of a rectangle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := geometry.Parse(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s area=%d width=%d height=%d\n", r, r.Area(), r.Width(), r.Height())
			return nil
		},
	}
}
