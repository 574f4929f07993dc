package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/jrwynneiii/freqplantools/freq"
	"github.com/jrwynneiii/freqplantools/plan"
	"github.com/jrwynneiii/freqplantools/table"
	"github.com/navidys/tvxwidgets"
	"github.com/rivo/tview"
)

type PlanFilesData struct {
	tview.TableContentReadOnly
	Files []string
}

func (p *PlanFilesData) GetRowCount() int {
	return len(p.Files)
}

func (p *PlanFilesData) GetColumnCount() int {
	return 1
}

func (p *PlanFilesData) GetCell(row, column int) *tview.TableCell {
	return tview.NewTableCell(fmt.Sprintf("[lightskyblue]%s", p.Files[row]))
}

// BandCount is the number of channels of a plan that fall in one band.
type BandCount struct {
	Band     freq.BandName
	Channels int
}

// CountBands tallies channels per band in frequency order. Bands without
// channels are left out; channels outside every band are counted last.
func CountBands(rows []*plan.ChirpChannel) []BandCount {
	counts := make(map[freq.BandName]int)
	for _, row := range rows {
		mhz, err := freq.Parse(row.Frequency)
		if err != nil {
			counts[freq.BandUnknown]++
			continue
		}
		counts[freq.BandOf(mhz).Name]++
	}

	var out []BandCount
	for _, b := range freq.USBands {
		if n := counts[b.Name]; n > 0 {
			out = append(out, BandCount{Band: b.Name, Channels: n})
		}
	}
	if n := counts[freq.BandUnknown]; n > 0 {
		out = append(out, BandCount{Band: freq.BandUnknown, Channels: n})
	}
	return out
}

// LoadPlan reads a CHIRP plan from disk; .zst files are decompressed.
func LoadPlan(path string) ([]*plan.ChirpChannel, error) {
	r, err := table.OpenInput(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return plan.ReadChirp(r)
}

// DescribePlan renders rows for the contents pane using tview color tags.
func DescribePlan(name string, rows []*plan.ChirpChannel) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[yellow]%s[white]: %d channels\n\n", tview.Escape(name), len(rows))
	fmt.Fprintf(&b, "%-5s %-10s %-11s %-3s %-9s %-5s %-12s %s\n",
		"Loc", "Name", "Freq", "Dup", "Offset", "Tone", "Tone Freq", "Comment")
	for _, row := range rows {
		fmt.Fprintf(&b, "%-5s %-10s %-11s %-3s %-9s %-5s %-12s %s\n",
			row.Location,
			tview.Escape(row.Name),
			row.Frequency,
			row.Duplex,
			row.Offset,
			row.Tone,
			toneFreq(row),
			tview.Escape(row.Comment),
		)
	}
	return b.String()
}

func toneFreq(row *plan.ChirpChannel) string {
	switch row.Tone {
	case "Tone":
		return row.RToneFreq
	case "TSQL":
		return row.RToneFreq + "/" + row.CToneFreq
	case "DTCS":
		return row.DtcsCode + " " + row.DtcsPolarity
	}
	return ""
}

var bandColors = []tcell.Color{
	tcell.ColorLightSkyBlue,
	tcell.ColorGreen,
	tcell.ColorYellow,
	tcell.ColorOrange,
	tcell.ColorPurple,
}

func newBandChart(counts []BandCount) *tvxwidgets.BarChart {
	chart := tvxwidgets.NewBarChart()
	chart.SetBorder(true)
	chart.SetTitle("Channels per Band")

	max := 1
	for i, c := range counts {
		chart.AddBar(string(c.Band), c.Channels, bandColors[i%len(bandColors)])
		if c.Channels > max {
			max = c.Channels
		}
	}
	chart.SetMaxValue(max)
	return chart
}

// StartPlanViewerUI browses the CHIRP plans named by files inside dir. Enter
// loads the selected plan, Tab switches panes and q quits.
func StartPlanViewerUI(files []string, dir string, logger *log.Logger) error {
	app := tview.NewApplication()

	filesData := &PlanFilesData{Files: files}
	filesTable := tview.NewTable().SetContent(filesData)
	filesTable.SetSelectable(true, false).SetBorder(false)

	filesBox := tview.NewFlex()
	filesBox.SetDirection(tview.FlexRow)
	filesBox.AddItem(filesTable, 0, 1, false)
	filesBox.SetTitle("Plans")
	filesBox.SetBorder(true)

	chartBox := tview.NewFlex().SetDirection(tview.FlexRow)
	chartBox.AddItem(newBandChart(nil), 0, 1, false)

	page := tview.NewFlex().SetDirection(tview.FlexColumn)

	leftCol := tview.NewFlex().SetDirection(tview.FlexRow)
	leftCol.AddItem(filesBox, 0, 3, false)
	leftCol.AddItem(chartBox, 0, 2, false)

	planBox := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetScrollable(true)
	planBox.SetBorder(true)
	planBox.SetTitle("Plan Contents")

	page.AddItem(leftCol, 0, 2, false)
	page.AddItem(planBox, 0, 5, false)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyTab:
			if filesTable.HasFocus() {
				app.SetFocus(planBox)
			} else {
				app.SetFocus(filesTable)
			}
			return nil
		case tcell.KeyEnter:
			selectedRow, _ := filesTable.GetSelection()
			if selectedRow < 0 || selectedRow >= len(files) {
				break
			}
			name := files[selectedRow]
			rows, err := LoadPlan(filepath.Join(dir, name))
			planBox.Clear()
			if err != nil {
				logger.Errorf("Could not load %s: %s", name, err)
				fmt.Fprintf(planBox, "[red]%s", tview.Escape(err.Error()))
				break
			}
			logger.Debugf("Loaded %d channels from %s", len(rows), name)
			fmt.Fprint(planBox, DescribePlan(name, rows))
			planBox.ScrollToBeginning()
			chartBox.Clear()
			chartBox.AddItem(newBandChart(CountBands(rows)), 0, 1, false)
		}
		switch event.Rune() {
		case 'q':
			app.Stop()
		}
		return event
	})

	if err := app.SetRoot(page, true).EnableMouse(false).SetFocus(filesTable).Run(); err != nil {
		return fmt.Errorf("could not start UI: %w", err)
	}
	return nil
}
