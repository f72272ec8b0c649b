package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mcscylla/portfolio-simulator/internal/domain"
)

// maxPlottedTrajectories caps how many individual paths the chart
// renders; beyond this the band and median carry the information and
// the page just gets slower.
const maxPlottedTrajectories = 500

// HTMLReport generates an interactive HTML report for a Monte Carlo run.
type HTMLReport struct {
	Result   *domain.SimulationResult
	Ensemble *domain.Ensemble
}

// GenerateHTMLReport creates an interactive HTML report with charts.
func (m *HTMLReport) GenerateHTMLReport(outputPath string) error {
	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	htmlContent, err := m.generateHTMLContent()
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(htmlContent), 0644); err != nil {
		return fmt.Errorf("failed to write HTML report: %w", err)
	}

	return nil
}

// generateHTMLContent creates the complete HTML report with embedded JavaScript.
func (m *HTMLReport) generateHTMLContent() (string, error) {
	pathDatasets, err := m.generatePathDatasets()
	if err != nil {
		return "", err
	}
	bandDatasets, err := m.generateBandDatasets()
	if err != nil {
		return "", err
	}
	labels, err := m.generateYearLabels()
	if err != nil {
		return "", err
	}

	r := m.Result
	cfg := r.Config

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Portfolio Monte Carlo Report</title>
    <script src="https://cdn.jsdelivr.net/npm/chart.js"></script>
    <style>
        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            margin: 0;
            padding: 20px;
            background: #f4f6f8;
        }
        .container {
            max-width: 1200px;
            margin: 0 auto;
            background: white;
            border-radius: 10px;
            box-shadow: 0 10px 25px rgba(0,0,0,0.08);
            overflow: hidden;
        }
        .header {
            background: #2c3e50;
            color: white;
            padding: 25px 30px;
        }
        .header h1 { margin: 0; font-weight: 300; }
        .header .subtitle { margin-top: 8px; opacity: 0.85; }
        .content { padding: 30px; }
        .summary-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(220px, 1fr));
            gap: 16px;
            margin-bottom: 30px;
        }
        .summary-card {
            border: 1px solid #e1e6ea;
            border-radius: 8px;
            padding: 16px;
        }
        .summary-card .label { color: #7f8c8d; font-size: 0.85em; }
        .summary-card .value { font-size: 1.4em; margin-top: 6px; }
        .controls { margin-bottom: 12px; }
        button {
            background: #3498db;
            border: none;
            color: white;
            padding: 8px 14px;
            border-radius: 5px;
            cursor: pointer;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Portfolio Monte Carlo Simulation</h1>
            <div class="subtitle">%d trajectories over %d years, %s policy</div>
        </div>
        <div class="content">
            <div class="summary-grid">
                <div class="summary-card">
                    <div class="label">Initial investment</div>
                    <div class="value">%s</div>
                </div>
                <div class="summary-card">
                    <div class="label">Mean final value</div>
                    <div class="value">%s</div>
                </div>
                <div class="summary-card">
                    <div class="label">Inflation-adjusted mean</div>
                    <div class="value">%s</div>
                </div>
                <div class="summary-card">
                    <div class="label">Depletion probability</div>
                    <div class="value">%s</div>
                </div>
            </div>
            <div class="controls">
                <button id="scaleToggle">Toggle log scale</button>
            </div>
            <canvas id="trajectoriesChart"></canvas>
        </div>
    </div>

    <script>
        Chart.defaults.font.family = "'Segoe UI', Tahoma, Geneva, Verdana, sans-serif";
        Chart.defaults.color = '#2c3e50';

        const pathDatasets = %s;
        const bandDatasets = %s;

        const ctx = document.getElementById('trajectoriesChart').getContext('2d');
        const chart = new Chart(ctx, {
            type: 'line',
            data: {
                labels: %s,
                datasets: bandDatasets.concat(pathDatasets)
            },
            options: {
                responsive: true,
                animation: { duration: 0 },
                elements: { point: { radius: 0 } },
                plugins: {
                    legend: {
                        labels: {
                            filter: item => !item.text.startsWith('Trajectory')
                        }
                    }
                },
                scales: {
                    x: { title: { display: true, text: 'Years' } },
                    y: { title: { display: true, text: 'Portfolio value (GBP)' } }
                }
            }
        });

        document.getElementById('scaleToggle').addEventListener('click', () => {
            const scale = chart.options.scales.y;
            scale.type = scale.type === 'logarithmic' ? 'linear' : 'logarithmic';
            chart.update();
        });
    </script>
</body>
</html>`,
		cfg.NumSimulations, cfg.Years, cfg.Policy(),
		FormatCurrency(cfg.InitialInvestment),
		FormatCurrency(r.MeanFinalValue),
		FormatCurrency(r.InflationAdjustedMean),
		FormatPercentagePoints(r.DepletionProbability),
		pathDatasets, bandDatasets, labels,
	), nil
}

type chartDataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BorderColor     string    `json:"borderColor"`
	BackgroundColor string    `json:"backgroundColor,omitempty"`
	BorderWidth     float64   `json:"borderWidth"`
	Fill            any       `json:"fill"`
}

// generatePathDatasets renders individual trajectories as faint blue
// lines, mirroring a crowd of translucent paths behind the band.
func (m *HTMLReport) generatePathDatasets() (string, error) {
	datasets := []chartDataset{}
	if m.Ensemble != nil {
		n := m.Ensemble.NumTrajectories()
		if n > maxPlottedTrajectories {
			n = maxPlottedTrajectories
		}
		for i := 0; i < n; i++ {
			datasets = append(datasets, chartDataset{
				Label:       fmt.Sprintf("Trajectory %d", i),
				Data:        m.Ensemble.Values[i],
				BorderColor: "rgba(52, 152, 219, 0.1)",
				BorderWidth: 1,
				Fill:        false,
			})
		}
	}
	data, err := json.Marshal(datasets)
	if err != nil {
		return "", fmt.Errorf("failed to marshal trajectory datasets: %w", err)
	}
	return string(data), nil
}

// generateBandDatasets renders the percentile band and median path.
func (m *HTMLReport) generateBandDatasets() (string, error) {
	datasets := []chartDataset{}
	if m.Result.Detailed() {
		datasets = []chartDataset{
			{
				Label:       "97.5th percentile",
				Data:        m.Result.UpperBand,
				BorderColor: "rgba(39, 174, 96, 0.8)",
				BorderWidth: 2,
				Fill:        false,
			},
			{
				Label:           "2.5th percentile",
				Data:            m.Result.LowerBand,
				BorderColor:     "rgba(231, 76, 60, 0.8)",
				BackgroundColor: "rgba(39, 174, 96, 0.08)",
				BorderWidth:     2,
				Fill:            "-1",
			},
			{
				Label:       "Median",
				Data:        m.Result.MedianPath,
				BorderColor: "rgba(44, 62, 80, 1)",
				BorderWidth: 3,
				Fill:        false,
			},
		}
	}
	data, err := json.Marshal(datasets)
	if err != nil {
		return "", fmt.Errorf("failed to marshal band datasets: %w", err)
	}
	return string(data), nil
}

func (m *HTMLReport) generateYearLabels() (string, error) {
	steps := 0
	if m.Ensemble != nil {
		steps = m.Ensemble.Steps()
	} else if m.Result.Detailed() {
		steps = len(m.Result.MedianPath)
	} else {
		steps = m.Result.Config.Years + 1
	}

	labels := make([]int, steps)
	for i := range labels {
		labels[i] = i
	}
	data, err := json.Marshal(labels)
	if err != nil {
		return "", fmt.Errorf("failed to marshal year labels: %w", err)
	}
	return string(data), nil
}
