package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// TimingStats 单次调用耗时统计（秒）
type TimingStats struct {
	Mean float64
	Min  float64
	P50  float64
	P99  float64
	N    int
}

// ImplRow impls 阶段单行数据
type ImplRow struct {
	Impl       string
	Length     int
	Repeat     int
	SecPerCall float64
	MinSec     float64
	Result     float64
}

// ViewRow views 阶段单行数据
type ViewRow struct {
	View       string
	Length     int
	Repeat     int
	SecPerCall float64
	AllocBytes uint64
}

// Percentile 计算切片中第 p 百分位（0-100），输入需已排序
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}
	idx := int(float64(len(sorted)-1) * p / 100)
	return sorted[idx]
}

// StatsFromDurations 由逐次耗时计算统计值
func StatsFromDurations(durations []time.Duration) TimingStats {
	if len(durations) == 0 {
		return TimingStats{}
	}
	s := make([]float64, len(durations))
	var sum float64
	for i, d := range durations {
		s[i] = d.Seconds()
		sum += s[i]
	}
	sort.Float64s(s)
	return TimingStats{
		Mean: sum / float64(len(s)),
		Min:  s[0],
		P50:  Percentile(s, 50),
		P99:  Percentile(s, 99),
		N:    len(s),
	}
}

// WriteImplCSV 写入 impls 阶段报告
func WriteImplCSV(rows []ImplRow, path string) error {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.Impl,
			fmt.Sprintf("%d", r.Length),
			fmt.Sprintf("%d", r.Repeat),
			fmt.Sprintf("%.3e", r.SecPerCall),
			fmt.Sprintf("%.3e", r.MinSec),
			fmt.Sprintf("%.17g", r.Result),
		})
	}
	return writeCSV(path, []string{"Impl", "Length", "Repeat", "SecPerCall", "MinSec", "Result"}, out)
}

// WriteViewCSV 写入 views 阶段报告
func WriteViewCSV(rows []ViewRow, path string) error {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.View,
			fmt.Sprintf("%d", r.Length),
			fmt.Sprintf("%d", r.Repeat),
			fmt.Sprintf("%.3e", r.SecPerCall),
			fmt.Sprintf("%d", r.AllocBytes),
		})
	}
	return writeCSV(path, []string{"View", "Length", "Repeat", "SecPerCall", "AllocBytes"}, out)
}

func writeCSV(path string, header []string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return w.Error()
}

// ReportPath 生成 dir 目录下带日期的报告路径
func ReportPath(dir, prefix string) string {
	return filepath.Join(dir, prefix+time.Now().Format("20060102")+".csv")
}

// WriteJSON 写入 JSON 报告（通用）
func WriteJSON(v interface{}, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
