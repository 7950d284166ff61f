package memory

import "github.com/andrasetya/draft-league/internal/domain/player"

const (
	LeaguePremierLeague = "Premier League"
	LeagueLaLiga        = "La Liga"
	LeagueSerieA        = "Serie A"
	LeagueBundesliga    = "Bundesliga"
	LeagueLigue1        = "Ligue 1"
)

// SeedPlayers is the built-in top-5-leagues catalog used when no catalog
// file is configured.
func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "p1", Name: "Erling Haaland", Position: player.PositionForward, Club: "Manchester City", League: LeaguePremierLeague},
		{ID: "p2", Name: "Phil Foden", Position: player.PositionMidfielder, Club: "Manchester City", League: LeaguePremierLeague},
		{ID: "p3", Name: "Rodri", Position: player.PositionMidfielder, Club: "Manchester City", League: LeaguePremierLeague},
		{ID: "p4", Name: "Ederson", Position: player.PositionGoalkeeper, Club: "Manchester City", League: LeaguePremierLeague},
		{ID: "p5", Name: "Mohamed Salah", Position: player.PositionForward, Club: "Liverpool", League: LeaguePremierLeague},
		{ID: "p6", Name: "Virgil van Dijk", Position: player.PositionDefender, Club: "Liverpool", League: LeaguePremierLeague},
		{ID: "p7", Name: "Alisson", Position: player.PositionGoalkeeper, Club: "Liverpool", League: LeaguePremierLeague},
		{ID: "p8", Name: "Trent Alexander-Arnold", Position: player.PositionDefender, Club: "Liverpool", League: LeaguePremierLeague},
		{ID: "p9", Name: "Bukayo Saka", Position: player.PositionForward, Club: "Arsenal", League: LeaguePremierLeague},
		{ID: "p10", Name: "Martin Ødegaard", Position: player.PositionMidfielder, Club: "Arsenal", League: LeaguePremierLeague},
		{ID: "p11", Name: "William Saliba", Position: player.PositionDefender, Club: "Arsenal", League: LeaguePremierLeague},
		{ID: "p12", Name: "David Raya", Position: player.PositionGoalkeeper, Club: "Arsenal", League: LeaguePremierLeague},
		{ID: "p13", Name: "Vinícius Júnior", Position: player.PositionForward, Club: "Real Madrid", League: LeagueLaLiga},
		{ID: "p14", Name: "Jude Bellingham", Position: player.PositionMidfielder, Club: "Real Madrid", League: LeagueLaLiga},
		{ID: "p15", Name: "Thibaut Courtois", Position: player.PositionGoalkeeper, Club: "Real Madrid", League: LeagueLaLiga},
		{ID: "p16", Name: "Antonio Rüdiger", Position: player.PositionDefender, Club: "Real Madrid", League: LeagueLaLiga},
		{ID: "p17", Name: "Robert Lewandowski", Position: player.PositionForward, Club: "Barcelona", League: LeagueLaLiga},
		{ID: "p18", Name: "Pedri", Position: player.PositionMidfielder, Club: "Barcelona", League: LeagueLaLiga},
		{ID: "p19", Name: "Ronald Araújo", Position: player.PositionDefender, Club: "Barcelona", League: LeagueLaLiga},
		{ID: "p20", Name: "Marc-André ter Stegen", Position: player.PositionGoalkeeper, Club: "Barcelona", League: LeagueLaLiga},
		{ID: "p21", Name: "Lautaro Martínez", Position: player.PositionForward, Club: "Inter Milan", League: LeagueSerieA},
		{ID: "p22", Name: "Hakan Çalhanoğlu", Position: player.PositionMidfielder, Club: "Inter Milan", League: LeagueSerieA},
		{ID: "p23", Name: "Alessandro Bastoni", Position: player.PositionDefender, Club: "Inter Milan", League: LeagueSerieA},
		{ID: "p24", Name: "Dušan Vlahović", Position: player.PositionForward, Club: "Juventus", League: LeagueSerieA},
		{ID: "p25", Name: "Gleison Bremer", Position: player.PositionDefender, Club: "Juventus", League: LeagueSerieA},
		{ID: "p26", Name: "Harry Kane", Position: player.PositionForward, Club: "Bayern Munich", League: LeagueBundesliga},
		{ID: "p27", Name: "Jamal Musiala", Position: player.PositionMidfielder, Club: "Bayern Munich", League: LeagueBundesliga},
		{ID: "p28", Name: "Manuel Neuer", Position: player.PositionGoalkeeper, Club: "Bayern Munich", League: LeagueBundesliga},
		{ID: "p29", Name: "Karim Adeyemi", Position: player.PositionForward, Club: "Borussia Dortmund", League: LeagueBundesliga},
		{ID: "p30", Name: "Mats Hummels", Position: player.PositionDefender, Club: "Borussia Dortmund", League: LeagueBundesliga},
		{ID: "p31", Name: "Kylian Mbappé", Position: player.PositionForward, Club: "PSG", League: LeagueLigue1},
		{ID: "p32", Name: "Gianluigi Donnarumma", Position: player.PositionGoalkeeper, Club: "PSG", League: LeagueLigue1},
		{ID: "p33", Name: "Kevin De Bruyne", Position: player.PositionMidfielder, Club: "Manchester City", League: LeaguePremierLeague},
		{ID: "p34", Name: "Bruno Fernandes", Position: player.PositionMidfielder, Club: "Manchester United", League: LeaguePremierLeague},
		{ID: "p35", Name: "Son Heung-min", Position: player.PositionForward, Club: "Tottenham", League: LeaguePremierLeague},
		{ID: "p36", Name: "Reece James", Position: player.PositionDefender, Club: "Chelsea", League: LeaguePremierLeague},
		{ID: "p37", Name: "Declan Rice", Position: player.PositionMidfielder, Club: "Arsenal", League: LeaguePremierLeague},
		{ID: "p38", Name: "Thiago Silva", Position: player.PositionDefender, Club: "Chelsea", League: LeaguePremierLeague},
		{ID: "p39", Name: "Andy Robertson", Position: player.PositionDefender, Club: "Liverpool", League: LeaguePremierLeague},
		{ID: "p40", Name: "Diogo Jota", Position: player.PositionForward, Club: "Liverpool", League: LeaguePremierLeague},
		{ID: "p41", Name: "Rúben Dias", Position: player.PositionDefender, Club: "Manchester City", League: LeaguePremierLeague},
		{ID: "p42", Name: "İlkay Gündoğan", Position: player.PositionMidfielder, Club: "Barcelona", League: LeagueLaLiga},
		{ID: "p43", Name: "Jules Koundé", Position: player.PositionDefender, Club: "Barcelona", League: LeagueLaLiga},
		{ID: "p44", Name: "Ferran Torres", Position: player.PositionForward, Club: "Barcelona", League: LeagueLaLiga},
		{ID: "p45", Name: "Federico Valverde", Position: player.PositionMidfielder, Club: "Real Madrid", League: LeagueLaLiga},
		{ID: "p46", Name: "Rodrygo", Position: player.PositionForward, Club: "Real Madrid", League: LeagueLaLiga},
		{ID: "p47", Name: "David Alaba", Position: player.PositionDefender, Club: "Real Madrid", League: LeagueLaLiga},
		{ID: "p48", Name: "Victor Osimhen", Position: player.PositionForward, Club: "Napoli", League: LeagueSerieA},
		{ID: "p49", Name: "Rafael Leão", Position: player.PositionForward, Club: "AC Milan", League: LeagueSerieA},
		{ID: "p50", Name: "Fikayo Tomori", Position: player.PositionDefender, Club: "AC Milan", League: LeagueSerieA},
	}
}
