package yr

// Trimmed copies of real forecast.xml / forecast_hour_by_hour.xml
// documents for Oslo.

const periodicFixture = `<?xml version="1.0" encoding="utf-8"?>
<weatherdata>
  <location>
    <name>Oslo</name>
    <type>City - large town</type>
    <country>Norway</country>
    <timezone id="Europe/Oslo" utcoffsetMinutes="60"/>
    <location altitude="0" latitude="59.91273" longitude="10.74609" geobase="ssr" geobaseid="18048"/>
  </location>
  <credit>
    <link text="Weather forecast from Yr, delivered by the Norwegian Meteorological Institute and the NRK" url="http://www.yr.no/place/Norway/Oslo/Oslo/Oslo/"/>
  </credit>
  <links>
    <link id="xmlSource" url="http://www.yr.no/place/Norway/Oslo/Oslo/Oslo/forecast.xml"/>
    <link id="xmlSourceHourByHour" url="http://www.yr.no/place/Norway/Oslo/Oslo/Oslo/forecast_hour_by_hour.xml"/>
  </links>
  <meta>
    <lastupdate>2016-01-23T21:21:00</lastupdate>
    <nextupdate>2016-01-24T09:00:00</nextupdate>
  </meta>
  <sun rise="2016-01-24T08:41:38" set="2016-01-24T16:27:28"/>
  <forecast>
    <tabular>
      <time from="2016-01-23T18:00:00" to="2016-01-24T00:00:00" period="3">
        <!-- Valid from 2016-01-23T18:00:00 to 2016-01-24T00:00:00 -->
        <symbol number="4" numberEx="4" name="Cloudy" var="04"/>
        <precipitation value="0"/>
        <windDirection deg="238.7" code="WSW" name="West-southwest"/>
        <windSpeed mps="2.2" name="Light breeze"/>
        <temperature unit="celsius" value="-5"/>
        <pressure unit="hPa" value="1026.9"/>
      </time>
      <time from="2016-01-24T00:00:00" to="2016-01-24T06:00:00" period="0">
        <!-- Valid from 2016-01-24T00:00:00 to 2016-01-24T06:00:00 -->
        <symbol number="4" numberEx="4" name="Cloudy" var="04"/>
        <precipitation value="0"/>
        <windDirection deg="356.2" code="N" name="North"/>
        <windSpeed mps="1.1" name="Light air"/>
        <temperature unit="celsius" value="-7"/>
        <pressure unit="hPa" value="1028.0"/>
      </time>
      <time from="2016-01-24T06:00:00" to="2016-01-24T12:00:00" period="1">
        <!-- Valid from 2016-01-24T06:00:00 to 2016-01-24T12:00:00 -->
        <symbol number="12" numberEx="12" name="Sleet" var="12"/>
        <precipitation value="1.1"/>
        <windDirection deg="98.2" code="E" name="East"/>
        <windSpeed mps="5.5" name="Gentle breeze"/>
        <temperature unit="celsius" value="-1"/>
        <pressure unit="hPa" value="1024.2"/>
      </time>
    </tabular>
  </forecast>
</weatherdata>
`

const hourlyFixture = `<?xml version="1.0" encoding="utf-8"?>
<weatherdata>
  <location>
    <name>Oslo</name>
    <type>City - large town</type>
    <country>Norway</country>
    <timezone id="Europe/Oslo" utcoffsetMinutes="60"/>
    <location altitude="0" latitude="59.91273" longitude="10.74609" geobase="ssr" geobaseid="18048"/>
  </location>
  <meta>
    <lastupdate>2016-01-23T21:21:00</lastupdate>
    <nextupdate>2016-01-24T09:00:00</nextupdate>
  </meta>
  <forecast>
    <text>
      <location name="Oslo">
        <time from="2016-01-23" to="2016-01-24">
          <title>Lørdag og søndag</title>
          <body>&lt;strong&gt;Østlandet:&lt;/strong&gt; Skyet, perioder med sludd.</body>
        </time>
        <time from="2016-01-25" to="2016-01-25">
          <title>Mandag</title>
          <body>&lt;strong&gt;Østlandet:&lt;/strong&gt; Oppholdsvær og lettere skydekke.</body>
        </time>
      </location>
    </text>
    <tabular>
      <time from="2016-01-23T22:00:00" to="2016-01-23T23:00:00">
        <!-- Valid from 2016-01-23T22:00:00 to 2016-01-23T23:00:00 -->
        <symbol number="4" numberEx="4" name="Cloudy" var="04"/>
        <precipitation value="0"/>
        <windDirection deg="251.5" code="WSW" name="West-southwest"/>
        <windSpeed mps="2.6" name="Light breeze"/>
        <temperature unit="celsius" value="-5"/>
        <pressure unit="hPa" value="1027.1"/>
      </time>
      <time from="2016-01-23T23:00:00" to="2016-01-24T00:00:00">
        <!-- Valid from 2016-01-23T23:00:00 to 2016-01-24T00:00:00 -->
        <symbol number="4" numberEx="4" name="Cloudy" var="04"/>
        <precipitation value="0"/>
        <windDirection deg="245.0" code="WSW" name="West-southwest"/>
        <windSpeed mps="2.2" name="Light breeze"/>
        <temperature unit="celsius" value="-6"/>
        <pressure unit="hPa" value="1027.5"/>
      </time>
      <time from="2016-01-24T00:00:00" to="2016-01-24T01:00:00">
        <!-- Valid from 2016-01-24T00:00:00 to 2016-01-24T01:00:00 -->
        <symbol number="4" numberEx="4" name="Cloudy" var="04"/>
        <precipitation value="0"/>
        <windDirection deg="0.2" code="N" name="North"/>
        <windSpeed mps="0.1" name="Calm"/>
        <temperature unit="celsius" value="-7"/>
        <pressure unit="hPa" value="1027.9"/>
      </time>
    </tabular>
  </forecast>
  <observations>
    <weatherstation stno="18700" sttype="DNMI" name="Oslo (Blindern)" distance="4294" lat="59.9423" lon="10.72" source="Norwegian Meteorological Institute">
      <symbol number="4" name="Cloudy" var="04"/>
      <temperature unit="celsius" value="-4.5"/>
      <windDirection deg="0" code="N" name="North"/>
      <windSpeed mps="0.0" name="Calm"/>
    </weatherstation>
    <weatherstation stno="18210" sttype="DNMI" name="Tryvasshøgda" distance="10338" lat="59.9850" lon="10.6696" source="Norwegian Meteorological Institute">
      <temperature unit="celsius" value="-8.0"/>
      <windDirection deg="275.5" code="W" name="West"/>
      <windSpeed mps="3.4" name="Gentle breeze"/>
    </weatherstation>
  </observations>
</weatherdata>
`

// hourlyFixtureMissingPressure is the hourly fixture with the pressure
// element removed from the second <time> node.
const hourlyFixtureMissingPressure = `<?xml version="1.0" encoding="utf-8"?>
<weatherdata>
  <location>
    <name>Oslo</name>
    <type>City - large town</type>
    <country>Norway</country>
    <timezone id="Europe/Oslo" utcoffsetMinutes="60"/>
    <location altitude="0" latitude="59.91273" longitude="10.74609" geobase="ssr" geobaseid="18048"/>
  </location>
  <meta>
    <lastupdate>2016-01-23T21:21:00</lastupdate>
    <nextupdate>2016-01-24T09:00:00</nextupdate>
  </meta>
  <forecast>
    <tabular>
      <time from="2016-01-23T22:00:00" to="2016-01-23T23:00:00">
        <symbol number="4" numberEx="4" name="Cloudy" var="04"/>
        <precipitation value="0"/>
        <windDirection deg="251.5" code="WSW" name="West-southwest"/>
        <windSpeed mps="2.6" name="Light breeze"/>
        <temperature unit="celsius" value="-5"/>
        <pressure unit="hPa" value="1027.1"/>
      </time>
      <time from="2016-01-23T23:00:00" to="2016-01-24T00:00:00">
        <symbol number="4" numberEx="4" name="Cloudy" var="04"/>
        <precipitation value="0"/>
        <windDirection deg="245.0" code="WSW" name="West-southwest"/>
        <windSpeed mps="2.2" name="Light breeze"/>
        <temperature unit="celsius" value="-6"/>
      </time>
      <time from="2016-01-24T00:00:00" to="2016-01-24T01:00:00">
        <symbol number="4" numberEx="4" name="Cloudy" var="04"/>
        <precipitation value="0"/>
        <windDirection deg="0.2" code="N" name="North"/>
        <windSpeed mps="0.1" name="Calm"/>
        <temperature unit="celsius" value="-7"/>
        <pressure unit="hPa" value="1027.9"/>
      </time>
    </tabular>
  </forecast>
</weatherdata>
`
