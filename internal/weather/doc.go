// Package weather serves daily forecasts for calendar days. It pulls the
// Open-Meteo daily forecast for a configured location, condenses each day
// to a glyph plus rounded max/min temperatures, and caches the result in
// memory so calendar polling does not hammer the upstream API.
package weather
