// Package render writes clock and forecast values into a Sink.
package render

import (
	"strconv"
	"time"

	"weatherwidget/format"
	"weatherwidget/manager"
	"weatherwidget/wmo"
)

const (
	Loading     = "..."
	Unavailable = "--"
	degree      = "°"
)

// Pipeline renders semantic values into the sink it was built with.
type Pipeline struct {
	sink Sink
}

func NewPipeline(sink Sink) *Pipeline {
	return &Pipeline{sink: sink}
}

// RenderClock writes the date, time and greeting for now.
func (p *Pipeline) RenderClock(now time.Time) {
	p.sink.Set(Date, format.Date(now))
	p.sink.Set(Time, format.Clock(now.Hour(), now.Minute()))
	p.sink.Set(Greeting, format.Greeting(now.Hour()))
	p.flush()
}

// RenderLoading shows the loading placeholder in the current-condition slots.
func (p *Pipeline) RenderLoading() {
	p.sink.Set(Temp, Loading)
	p.sink.Set(Condition, Loading)
	p.flush()
}

func (p *Pipeline) RenderPlace(name string) {
	p.sink.Set(Place, name)
	p.flush()
}

// RenderForecast writes the current conditions and the weekly strip. A nil
// forecast shows placeholders and leaves the weekly strip as it was.
func (p *Pipeline) RenderForecast(forecast *manager.Forecast) {
	defer p.flush()

	if forecast == nil {
		p.sink.Set(Temp, Unavailable+" "+degree)
		p.sink.Set(Condition, Unavailable)
		return
	}

	p.sink.Set(Temp, temperature(forecast.CurrentTemp))
	p.sink.Set(Condition, wmo.Describe(forecast.CurrentCode))

	if forecast.DailyDates == nil {
		return
	}

	labels := format.Weekdays(forecast.DailyDates)
	for i := 0; i < p.sink.Days(); i++ {
		var day Day
		if i < len(labels) {
			day.Label = labels[i]
		}
		if i < len(forecast.DailyMaxTemps) {
			day.Temp = temperature(forecast.DailyMaxTemps[i])
		}
		if i < len(forecast.DailyCodes) {
			day.Condition = wmo.Describe(forecast.DailyCodes[i])
		}
		p.sink.SetDay(i, day)
	}
}

func (p *Pipeline) flush() {
	if f, ok := p.sink.(Flusher); ok {
		f.Flush()
	}
}

func temperature(t float64) string {
	return strconv.FormatFloat(t, 'f', -1, 64) + degree
}
