package poseidon2

import "github.com/sp301415/ember-stark/m31"

// Round constants for width 16 over M31, generated with the Grain LFSR.
// These are fixed protocol parameters and must not be regenerated.
var externalRoundConsts = [2 * halfFullRounds][Width]m31.Elem{
	{1323103696, 32820862, 1980729053, 317622338, 50263984, 427303566, 476470815, 1873216103, 1013492029, 1876243821, 1423021976, 1034880506, 255516447, 1751710500, 1772458188, 1905707724},
	{2146357039, 300477280, 1303317487, 1896371959, 1077911909, 1623307068, 1716928924, 1899262763, 561896200, 2147059615, 262690381, 2144164168, 1245079228, 715189338, 588134996, 1875961624},
	{727635773, 1044882765, 1256399791, 170160872, 776522156, 1947778522, 1540706240, 1368992253, 412370089, 1562388559, 1199766382, 257896456, 931242721, 266356162, 1661329514, 1750311239},
	{818000640, 1603533679, 1930399982, 1297369576, 725793885, 1909393024, 542194279, 835590442, 118405644, 363245886, 306379271, 1859125274, 907155627, 728473679, 68216888, 955416744},
	{1460405014, 1954678784, 1737828686, 1054416209, 404011322, 887173471, 2106282024, 89192021, 1805308905, 731574445, 1689910155, 2010105078, 1592067770, 2053284731, 1704275285, 1622667542},
	{1496650353, 1129998437, 94975783, 1405456603, 1491473593, 1152648986, 1745698830, 786137366, 1273851054, 46867306, 1106872977, 1239847504, 1618342387, 767578938, 988319243, 1608609998},
	{1259045680, 1943647915, 1878170765, 1617904628, 77215054, 1172823114, 270899505, 648507064, 1275491737, 1639546117, 1743480048, 452460390, 8777006, 137880181, 1299964759, 932562216},
	{795180932, 178810366, 104268930, 86930848, 1965844883, 1574834033, 1529304802, 2046056540, 1725752411, 1791806377, 178907537, 2097766673, 1024197625, 1683581695, 1760930095, 1350479555},
}

var internalRoundConsts = [partialRounds]m31.Elem{
	2059409277,
	1595326017,
	729019563,
	821223358,
	821187094,
	1018226477,
	446527941,
	1373425565,
	1207007119,
	810524052,
	613105743,
	340008665,
	112809736,
	418771749,
	1786887756,
	406920982,
	458308628,
	501550214,
	873604502,
	2101098514,
	1717274910,
	1611916122,
	368379723,
	1530763479,
	1570467377,
	1796879066,
}

// internalDiag holds the diagonal weights of the internal linear layer,
// 4 for element 0 and 2^(i+1) for i > 0. Entry 0 must stay 4: with the
// textbook 2^(i+1)+1 table the matrix minimal polynomial is reducible.
var internalDiag = [Width]m31.Elem{
	4, 4, 8, 16, 32, 64, 128, 256, 512, 1024, 2048, 4096, 8192, 16384, 32768, 65536,
}
