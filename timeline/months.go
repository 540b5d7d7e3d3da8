package timeline

// MonthNames are the Portuguese month display names, January first, indexed
// by the same 0-based month used for filtering and grouping.
var MonthNames = [12]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}
