package service

import "time"

// NextSunday возвращает ближайшее воскресенье строго после now.
// Если now само воскресенье, результат - через 7 дней
func NextSunday(now time.Time) time.Time {
	days := (7 - int(now.Weekday())) % 7
	if days == 0 {
		days = 7
	}
	y, m, d := now.Date()
	return time.Date(y, m, d+days, 0, 0, 0, 0, now.Location())
}

// WeeklyDates возвращает weeks дат с шагом 7 дней, начиная с anchor
func WeeklyDates(anchor time.Time, weeks int) []time.Time {
	if weeks <= 0 {
		return []time.Time{}
	}
	dates := make([]time.Time, 0, weeks)
	for i := 0; i < weeks; i++ {
		dates = append(dates, anchor.AddDate(0, 0, 7*i))
	}
	return dates
}
