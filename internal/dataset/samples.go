package dataset

var firstData = [][2]float64{
	{0, 12}, {1, 18}, {2, 15}, {3, 25}, {4, 22}, {5, 30}, {6, 28}, {7, 35},
	{8, 31}, {9, 40}, {10, 38}, {11, 45}, {12, 42}, {13, 50}, {14, 47},
	{15, 55}, {16, 52}, {17, 60}, {18, 58}, {19, 65},
}

var secondData = [][2]float64{
	{0, 80}, {2, 74}, {4, 77}, {6, 62}, {8, 66}, {10, 51}, {12, 55}, {14, 43},
	{16, 48}, {18, 35}, {20, 39}, {22, 27}, {24, 31}, {26, 20}, {28, 24},
	{30, 12},
}

var thirdData = [][2]float64{
	{0, 5}, {5, 42}, {10, 18}, {15, 67}, {20, 33}, {25, 91}, {30, 47},
	{35, 72}, {40, 26}, {45, 84}, {50, 39}, {55, 63}, {60, 15}, {65, 58},
	{70, 21}, {75, 96}, {80, 44}, {85, 70}, {90, 30}, {95, 88}, {100, 52},
}
