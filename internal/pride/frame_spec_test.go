package pride_test

import (
	"regexp"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/oSoWoSo/neofetch/internal/color"
	"github.com/oSoWoSo/neofetch/internal/pride"
)

var ansiEscapes = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripEscapes(s string) string {
	return ansiEscapes.ReplaceAllString(s, "")
}

var _ = Describe("Renderer", func() {
	const art = "\n####\n#  #\n####\n"

	var (
		layout pride.Layout
		cycle  []color.RGB
	)

	BeforeEach(func() {
		layout = pride.NewLayout(45, 11, art, "done")
		cycle = []color.RGB{
			color.MustHex("#E50000"),
			color.MustHex("#FF8D00"),
			color.MustHex("#FFEE00"),
		}
	})

	newRenderer := func() *pride.Renderer {
		r, err := pride.NewRenderer(layout, cycle, color.ModeRGB)
		Expect(err).NotTo(HaveOccurred())
		return r
	}

	It("fills every terminal cell", func() {
		rows := strings.Split(stripEscapes(newRenderer().Frame(0)), "\n")
		Expect(rows).To(HaveLen(layout.Height))
		for _, row := range rows {
			Expect(row).To(HaveLen(layout.Width))
		}
	})

	It("renders byte-identical frames for the same index", func() {
		r := newRenderer()
		for _, frame := range []int{0, 2, 88, 1024} {
			Expect(r.Frame(frame)).To(Equal(r.Frame(frame)))
		}
	})

	It("embeds the art block at its computed box", func() {
		rows := strings.Split(stripEscapes(newRenderer().Frame(6)), "\n")
		Expect(rows[layout.TextStartY][layout.TextStartX:layout.TextEndX]).To(Equal("####"))
		Expect(rows[layout.TextStartY+1][layout.TextStartX:layout.TextEndX]).To(Equal("#  #"))
		Expect(strings.TrimSpace(rows[0])).To(BeEmpty())
	})

	It("right-aligns the notice on the bottom row", func() {
		rows := strings.Split(stripEscapes(newRenderer().Frame(0)), "\n")
		last := rows[layout.NoticeY]
		Expect(last[layout.NoticeStartX:layout.NoticeEndX]).To(Equal("done"))
		Expect(last[layout.NoticeEndX:]).To(Equal(" "))
	})

	It("opens each row with that row's stripe color", func() {
		const frame = 4
		rows := strings.Split(newRenderer().Frame(frame), "\n")
		for y, row := range rows {
			want := cycle[((frame+y)/layout.BlockWidth)%len(cycle)].Sequence(color.ModeRGB, true)
			Expect(strings.HasPrefix(row, want)).To(BeTrue(), "row %d", y)
		}
	})

	It("darkens the backdrop under the text boxes", func() {
		cycle = []color.RGB{{R: 255, G: 255, B: 255}}
		frame := newRenderer().Frame(0)

		dark := color.RGB{R: 255, G: 255, B: 255}.Overlay(color.RGB{}, 0.5)
		Expect(frame).To(ContainSubstring(dark.Sequence(color.ModeRGB, true)))
	})

	It("starts a fresh styled run at every box edge even inside a stripe", func() {
		layout.BlockWidth = 1000 // no natural switching points left
		r := newRenderer()
		rows := strings.Split(r.Frame(0), "\n")

		// The printable runs between escapes locate the switching
		// columns: after the row prologue, a new run starts at each box
		// edge. The border sits one column out on the art's top row and
		// two columns out on interior rows.
		top := ansiEscapes.Split(rows[layout.TextStartY], -1)
		Expect(runLengths(top)).To(Equal([]int{
			layout.TextStartX - 1,
			(layout.TextEndX + 1) - (layout.TextStartX - 1),
			(layout.NoticeStartX - 1) - (layout.TextEndX + 1),
			layout.Width - (layout.NoticeStartX - 1),
		}))

		interior := ansiEscapes.Split(rows[layout.TextStartY+1], -1)
		Expect(runLengths(interior)).To(Equal([]int{
			layout.TextStartX - 2,
			(layout.TextEndX + 2) - (layout.TextStartX - 2),
			(layout.NoticeStartX - 1) - (layout.TextEndX + 2),
			layout.Width - (layout.NoticeStartX - 1),
		}))
	})
})

// runLengths drops the empty fragments the prologue and trailing reset
// leave behind and returns the lengths of the printable runs.
func runLengths(segments []string) []int {
	lens := []int{}
	for _, s := range segments {
		if s != "" {
			lens = append(lens, len(s))
		}
	}
	return lens
}
